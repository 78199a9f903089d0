package email

// SendWelcomeEmail sends the post-signup welcome email.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(
		to,
		"Welcome aboard!",
		TemplateWelcome,
		map[string]string{
			"UserName": name,
		},
	)
}
