package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/yeahnah-server/utils"
)

const maxLogoSize = 5 << 20 // 5MB

// POST /api/upload/logo — upload logo event lên Supabase Storage
func UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không nhận được file logo"})
		return
	}
	if fileHeader.Size > maxLogoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo tối đa 5MB"})
		return
	}

	// sniff content type thay vì tin header từ client
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đọc file"})
		return
	}
	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	f.Close()

	contentType := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File phải là ảnh"})
		return
	}

	url, err := utils.UploadLogoToSupabase(fileHeader, uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload logo thất bại"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logoUrl": url})
}
