package mailer

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

type templateData struct {
	Name        string
	OrderID     string
	Product     string
	DownloadURL string
}

var ebookHTMLTemplate = htmltemplate.Must(htmltemplate.New("ebook").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #FF006E 0%, #8338EC 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
    .button { display: inline-block; background: linear-gradient(135deg, #FF006E, #FB5607); color: white; padding: 18px 40px; text-decoration: none; border-radius: 10px; margin: 20px 0; font-weight: bold; font-size: 18px; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 28px;">🎉 Welcome to NexaMind!</h1>
      <p style="margin: 10px 0 0; font-size: 16px;">Your AI Mastery Journey Starts Now</p>
    </div>
    <div class="content">
      <h2 style="color: #FF006E; margin-top: 0;">Hi {{.Name}}! 👋</h2>
      <p style="font-size: 16px;">Thank you for purchasing the <strong>{{.Product}}</strong> guide!</p>
      <p style="font-size: 16px;">Your complete AI mastery system is ready to download. Click the button below to get your package now!</p>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.DownloadURL}}" class="button">📦 Download Your Complete Package Now</a>
      </div>
      <p style="font-size: 14px; text-align: center; color: #666;">
        Or copy this link: <a href="{{.DownloadURL}}" style="color: #FF006E;">{{.DownloadURL}}</a>
      </p>
      <p style="font-size: 16px;"><strong>Order ID:</strong> {{if .OrderID}}{{.OrderID}}{{else}}N/A{{end}}</p>
      <p style="font-size: 16px;">Need help or have questions? Simply reply to this email!</p>
      <p style="font-size: 16px;">To your AI mastery,<br><strong>Team NexaMind</strong><br><em>Think Ahead with AI™</em></p>
    </div>
    <div class="footer">
      <p>© 2024 NexaMind. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

var ebookTextTemplate = texttemplate.Must(texttemplate.New("ebook-text").Parse(`Hi {{.Name}}!

Thank you for purchasing the {{.Product}} guide!

Your complete AI mastery system is ready to download.

Download Your Package:
{{.DownloadURL}}

Order ID: {{if .OrderID}}{{.OrderID}}{{else}}N/A{{end}}

Need help? Reply to this email anytime!

To Your AI Success,
Team NexaMind

Think Ahead with AI™

Bookmark this link - you can re-download anytime:
{{.DownloadURL}}
`))
