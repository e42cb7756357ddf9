package models

import "time"

// NewsletterSubscriber подписчик рассылки, доступен только администратору.
type NewsletterSubscriber struct {
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}
