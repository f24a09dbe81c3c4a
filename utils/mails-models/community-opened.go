package mailsmodels

import (
	"fmt"
	"os"

	"dancehub-backend/utils"
)

func CommunityOpened(email string, communityName string, communitySlug string) {
	baseURL := os.Getenv("APP_BASE_URL")
	link := baseURL + "/community/" + communitySlug

	subject := "Subject: " + communityName + " is now open! \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1A1A2E; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">%s is open</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">The doors are open and your membership has started. Jump in:</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<a href="%s" style="font-weight: bold; color: #1A1A2E;">%s</a>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, communityName, link, link)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
