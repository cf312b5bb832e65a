package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

const logoBucket = "yeahnah_uploads"

// UploadLogoToSupabase đẩy file logo lên bucket và trả về public URL
func UploadLogoToSupabase(fh *multipart.FileHeader, fileID string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	var reader io.Reader = f
	ext := filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")

	// Đảm bảo con trỏ file được reset về đầu
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("logos/%s%s", fileID, ext)

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := storageClient.UploadFile(logoBucket, objectPath, reader, options); err != nil {
		return "", err
	}

	publicURL := storageClient.GetPublicUrl(logoBucket, objectPath)
	return publicURL.SignedURL, nil
}
