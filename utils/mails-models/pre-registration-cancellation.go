package mailsmodels

import (
	"fmt"

	"dancehub-backend/utils"
)

func PreRegistrationCancellation(email string, communityName string) {
	subject := "Subject: Your pre-registration for " + communityName + " was canceled \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div style="background-color: #1A1A2E; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%;  min-height: 300px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Pre-registration canceled</h1></td>
				</tr>
				<tr>
					<td style="text-align:center; padding-bottom: 30px;">Your pre-registration for %s has been canceled. Your saved payment method was removed and you will not be charged.</td>
				</tr>
			</tbody>
		</table>
	</div>
`, communityName)

	message := []byte(subject + mime + body)

	utils.SendMail(email, message)
}
