package mailsmodels

import (
	"fmt"
	"time"

	"dancehub-backend/utils"
)

func PreRegistrationConfirmation(email string, communityName string, openingDate time.Time) {
	subject := "Subject: Your spot at " + communityName + " is reserved \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1A1A2E; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">You are pre-registered for %s</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your payment method has been saved. You will not be charged before the community opens.</td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">
						<p style="font-weight: bold; color: #1A1A2E; text-align:center;">Opening date: %s</p>
					</td>
				</tr>
			</tbody>
		</table>
	</div>
`, communityName, openingDate.Format("January 2, 2006"))

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
