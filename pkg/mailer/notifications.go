package mailer

import "fmt"

// FeedbackResponseJob builds the notification sent to a resident when staff
// responds to their feedback.
func FeedbackResponseJob(to, area, feedbackType, responseText string) EmailJob {
	text := fmt.Sprintf(
		"Hello,\n\nThe municipal waste team has responded to your %s feedback for %s:\n\n%s\n\nThank you for helping us keep the city clean.\n",
		feedbackType, area, responseText,
	)
	return EmailJob{
		To:      to,
		Subject: "A response to your feedback",
		Text:    text,
	}
}
