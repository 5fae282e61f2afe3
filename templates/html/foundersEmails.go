package templates

import (
	"fmt"
	"html"
)

// RenderInviteCodeEmail generates the HTML for the founders club invite code email.
// expiresText is the human-readable expiry, e.g. "September 1, 2026 at 3:04 PM UTC".
func RenderInviteCodeEmail(fullName, code, expiresText, baseURL string) string {
	safeName := html.EscapeString(fullName)
	safeCode := html.EscapeString(code)
	safeExpires := html.EscapeString(expiresText)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Your Founders Club Invite Code — Linkist</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #0a0a0f; }
    .container { max-width: 600px; margin: 0 auto; background-color: #12121f; }
    .header { background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #e5e7eb; }
    .content h2 { color: #fff; margin-top: 0; }
    .code-box { background: rgba(249, 115, 22, 0.1); border: 1px solid rgba(249, 115, 22, 0.3); border-radius: 12px; padding: 24px; margin: 24px 0; text-align: center; }
    .code-box .code { color: #f97316; font-family: 'Courier New', monospace; font-size: 32px; font-weight: 700; letter-spacing: 4px; }
    .code-box .expires { color: #9ca3af; font-size: 13px; margin-top: 12px; }
    .benefits { margin: 30px 0; }
    .benefit-item { display: flex; margin-bottom: 15px; }
    .benefit-icon { width: 24px; height: 24px; background: #f97316; border-radius: 50%%; margin-right: 15px; flex-shrink: 0; }
    .benefit-text { color: #9ca3af; font-size: 14px; line-height: 24px; }
    .cta-button { display: inline-block; background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); color: #fff; padding: 14px 28px; border-radius: 8px; text-decoration: none; font-weight: 700; margin-top: 20px; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid rgba(255,255,255,0.1); }
    .footer a { color: #f97316; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Welcome to the Founders Club</h1>
    </div>
    <div class="content">
      <h2>Hi %s,</h2>
      <p>Your request has been approved. Here is your personal <strong>Founders Club</strong> invite code:</p>

      <div class="code-box">
        <div class="code">%s</div>
        <div class="expires">Valid until %s</div>
      </div>

      <p>Enter this code during checkout on linkist.com to claim your founding membership. The code is tied to this email address and can be used once.</p>

      <div class="benefits">
        <div class="benefit-item">
          <div class="benefit-icon"></div>
          <div class="benefit-text"><strong>Founder pricing</strong> locked in for life</div>
        </div>
        <div class="benefit-item">
          <div class="benefit-icon"></div>
          <div class="benefit-text"><strong>Early access</strong> to every new Linkist feature</div>
        </div>
        <div class="benefit-item">
          <div class="benefit-icon"></div>
          <div class="benefit-text"><strong>Founders badge</strong> on your Linkist profile</div>
        </div>
        <div class="benefit-item">
          <div class="benefit-icon"></div>
          <div class="benefit-text"><strong>Direct line</strong> to the product team</div>
        </div>
      </div>

      <a href="%s/founders" class="cta-button">Claim Your Membership</a>
    </div>
    <div class="footer">
      <p>&copy; Linkist | <a href="https://www.linkist.com">linkist.com</a></p>
      <p><a href="https://www.linkist.com/contact-us">Contact Support</a></p>
    </div>
  </div>
</body>
</html>`, safeName, safeCode, safeExpires, baseURL)
}

// RenderAdminPasswordReset generates the HTML for the admin password reset email
func RenderAdminPasswordReset(resetLink string) string {
	safeLink := html.EscapeString(resetLink)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Founders Console Password Reset</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #0a0a0f; }
    .container { max-width: 600px; margin: 0 auto; background-color: #12121f; }
    .header { background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #e5e7eb; line-height: 1.6; font-size: 15px; }
    .cta-button { display: inline-block; background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); color: #fff; padding: 14px 28px; border-radius: 8px; text-decoration: none; font-weight: 700; margin: 20px 0; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid rgba(255,255,255,0.1); }
    .footer a { color: #f97316; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Founders Console Password Reset</h1>
    </div>
    <div class="content">
      <p>A password reset was requested for your Linkist founders console account.</p>

      <a href="%s" class="cta-button">Reset Your Password</a>

      <p>This link expires in one hour. If you did not request a reset, you can ignore this email.</p>
    </div>
    <div class="footer">
      <p>&copy; Linkist | <a href="https://www.linkist.com">linkist.com</a></p>
      <p><a href="https://www.linkist.com/contact-us">Contact Support</a></p>
    </div>
  </div>
</body>
</html>`, safeLink)
}

// RenderPendingDigest generates the HTML for the daily pending-requests digest sent to admins
func RenderPendingDigest(pendingCount int64, consoleLink string) string {
	safeLink := html.EscapeString(consoleLink)

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Founders Club: Pending Requests</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #0a0a0f; }
    .container { max-width: 600px; margin: 0 auto; background-color: #12121f; }
    .header { background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #e5e7eb; line-height: 1.6; font-size: 15px; }
    .count-box { background: rgba(249, 115, 22, 0.1); border: 1px solid rgba(249, 115, 22, 0.3); border-radius: 12px; padding: 24px; margin: 24px 0; text-align: center; }
    .count-box .count { color: #f97316; font-size: 40px; font-weight: 700; }
    .count-box .label { color: #9ca3af; font-size: 13px; margin-top: 8px; }
    .cta-button { display: inline-block; background: linear-gradient(135deg, #f97316 0%%, #ea580c 100%%); color: #fff; padding: 14px 28px; border-radius: 8px; text-decoration: none; font-weight: 700; margin-top: 10px; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid rgba(255,255,255,0.1); }
    .footer a { color: #f97316; text-decoration: none; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Pending Founders Requests</h1>
    </div>
    <div class="content">
      <p>These founders club requests are waiting for review.</p>

      <div class="count-box">
        <div class="count">%d</div>
        <div class="label">request(s) pending</div>
      </div>

      <a href="%s" class="cta-button">Open the Review Queue</a>
    </div>
    <div class="footer">
      <p>&copy; Linkist | <a href="https://www.linkist.com">linkist.com</a></p>
      <p><a href="https://www.linkist.com/contact-us">Contact Support</a></p>
    </div>
  </div>
</body>
</html>`, pendingCount, safeLink)
}
