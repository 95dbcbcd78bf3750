package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - Loopline</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, profile information you choose to share, and app usage data to provide our services.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate Loopline, authenticate your account, and improve our services.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@loopline.app</p>
</body></html>`)
}

func (h *LegalHandler) CommunityGuidelines(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Community Guidelines - Loopline</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Community Guidelines</h1>
<p>Last updated: August 2026</p>
<h2>Be Respectful</h2>
<p>Harassment, hate speech, and threats have no place on Loopline and lead to content removal or account suspension.</p>
<h2>Keep It Honest</h2>
<p>Spam, scams, and deliberate misinformation are removed. Shop listings must describe real items.</p>
<h2>Reporting</h2>
<p>Use the report button on any post, comment, listing, or profile. Our moderators review every report.</p>
<h2>Appeals</h2>
<p>If you believe a moderation decision was wrong, contact support@loopline.app</p>
</body></html>`)
}
