package utils

import (
	"fmt"
	"html"
	"os"
	"strconv"
	"strings"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// EventSummary là dữ liệu tổng kết gửi cho host trước khi xoá event
type EventSummary struct {
	EventID         string
	Title           string
	EventDate       time.Time
	HostName        string
	HostEmail       string
	TotalGuests     int
	ConfirmedGuests int
	DeclinedGuests  int
	PendingGuests   int
	Groups          []GroupSummary
	Awards          []AwardSummary
}

type GroupSummary struct {
	Name      string
	Guests    int
	Confirmed int
}

type AwardSummary struct {
	Title  string
	Winner string
	Votes  int
}

// SendEventSummaryEmail render summary thành HTML và gửi qua SMTP.
// Trả error để caller log; việc xoá event không phụ thuộc kết quả gửi.
func SendEventSummaryEmail(summary EventSummary) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	port, err := strconv.Atoi(portStr)
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@yeahnah.com"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", summary.HostEmail)
	m.SetHeader("Subject", "Event Summary: "+summary.Title)
	m.SetBody("text/html", GenerateEventSummaryHTML(summary))

	d := gomail.NewDialer(host, port, user, pass)
	return d.DialAndSend(m)
}

// GenerateEventSummaryHTML là pure function: summary -> HTML email body.
// Không side effect, luôn thành công với input hợp lệ.
func GenerateEventSummaryHTML(summary EventSummary) string {
	eventDate := summary.EventDate.Format("Monday, January 2, 2006")

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Event Summary - ` + html.EscapeString(summary.Title) + `</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa; }
    .container { background: white; border-radius: 12px; padding: 30px; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1); }
    .header { text-align: center; margin-bottom: 30px; padding-bottom: 20px; border-bottom: 2px solid #e9ecef; }
    .logo { font-size: 24px; font-weight: bold; color: #667eea; margin-bottom: 10px; }
    .event-title { font-size: 28px; font-weight: bold; color: #333; margin-bottom: 10px; }
    .event-date { font-size: 16px; color: #666; background: #f8f9fa; padding: 8px 16px; border-radius: 20px; display: inline-block; }
    .stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(120px, 1fr)); gap: 20px; margin: 30px 0; }
    .stat-card { text-align: center; padding: 20px; background: #f8f9fa; border-radius: 8px; }
    .stat-number { font-size: 32px; font-weight: bold; color: #667eea; margin-bottom: 5px; }
    .stat-label { font-size: 14px; color: #666; text-transform: uppercase; letter-spacing: 0.5px; }
    .section { margin: 30px 0; }
    .section-title { font-size: 20px; font-weight: bold; color: #333; margin-bottom: 15px; padding-bottom: 10px; border-bottom: 1px solid #e9ecef; }
    .group-item { background: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 10px; }
    .award-item { background: #fff3cd; padding: 15px; border-radius: 8px; margin-bottom: 10px; border-left: 4px solid #ffc107; }
    .winner { font-weight: bold; color: #856404; }
    .footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e9ecef; color: #666; font-size: 14px; }
    .highlight { background: linear-gradient(135deg, #667eea, #764ba2); color: white; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">📅 Yeahnah</div>
      <h1 class="event-title">` + html.EscapeString(summary.Title) + `</h1>
      <div class="event-date">` + eventDate + `</div>
    </div>

    <div class="highlight">
      <h2 style="margin: 0 0 10px 0;">Event Summary</h2>
      <p style="margin: 0;">Thank you for using Yeahnah for your event!</p>
    </div>

    <div class="stats-grid">
      <div class="stat-card">
        <div class="stat-number">` + strconv.Itoa(summary.TotalGuests) + `</div>
        <div class="stat-label">Total Guests</div>
      </div>
      <div class="stat-card">
        <div class="stat-number" style="color: #28a745;">` + strconv.Itoa(summary.ConfirmedGuests) + `</div>
        <div class="stat-label">Confirmed</div>
      </div>
      <div class="stat-card">
        <div class="stat-number" style="color: #dc3545;">` + strconv.Itoa(summary.DeclinedGuests) + `</div>
        <div class="stat-label">Declined</div>
      </div>
      <div class="stat-card">
        <div class="stat-number" style="color: #ffc107;">` + strconv.Itoa(summary.PendingGuests) + `</div>
        <div class="stat-label">Pending</div>
      </div>
    </div>
`)

	if len(summary.Groups) > 0 {
		b.WriteString(`
    <div class="section">
      <h2 class="section-title">Group Breakdown</h2>
`)
		for _, group := range summary.Groups {
			b.WriteString(fmt.Sprintf(`      <div class="group-item">
        <strong>%s</strong><br>
        <span style="color: #666;">%d of %d guests confirmed</span>
      </div>
`, html.EscapeString(group.Name), group.Confirmed, group.Guests))
		}
		b.WriteString("    </div>\n")
	}

	if len(summary.Awards) > 0 {
		b.WriteString(`
    <div class="section">
      <h2 class="section-title">Award Winners</h2>
`)
		for _, award := range summary.Awards {
			b.WriteString(fmt.Sprintf(`      <div class="award-item">
        <strong>%s</strong><br>
        <span class="winner">🏆 %s</span> (%d votes)
      </div>
`, html.EscapeString(award.Title), html.EscapeString(award.Winner), award.Votes))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString(`
    <div class="section">
      <div class="highlight">
        <h3 style="margin: 0 0 10px 0;">Event Data Cleanup</h3>
        <p style="margin: 0; font-size: 14px;">
          Your event data has been automatically archived and removed from our active database
          to make space for new events. Thank you for using Yeahnah!
        </p>
      </div>
    </div>

    <div class="footer">
      <p>Powered by Yeahnah - RSVP Management Platform</p>
      <p>This email was automatically generated after your event completion.</p>
    </div>
  </div>
</body>
</html>
`)

	return b.String()
}
