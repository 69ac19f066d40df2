package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxAttachments = 7
	MaxTitleWords  = 15
)

type Question struct {
	ID             string          `json:"id" db:"id"`
	Title          string          `json:"title" db:"title"`
	Subject        string          `json:"subject" db:"subject"`
	Budget         decimal.Decimal `json:"budget" db:"budget"`
	DeliveryTime   string          `json:"delivery_time" db:"delivery_time"`
	Description    string          `json:"description" db:"description"`
	FileURLs       []string        `json:"file_urls" db:"file_urls"`
	IsAssigned     bool            `json:"is_assigned" db:"is_assigned"`
	TutorAssigned  string          `json:"tutor_assigned,omitempty" db:"tutor_assigned"`
	AssignedAt     *time.Time      `json:"assigned_at,omitempty" db:"assigned_at"`
	IsAnswered     bool            `json:"is_answered" db:"is_answered"`
	AnswerText     string          `json:"answer_text,omitempty" db:"answer_text"`
	AnswerFileURLs []string        `json:"answer_file_urls,omitempty" db:"answer_file_urls"`
	AnsweredAt     *time.Time      `json:"answered_at,omitempty" db:"answered_at"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

type PostQuestionRequest struct {
	Title        string `json:"title" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	Budget       string `json:"budget" validate:"required"`
	DeliveryTime string `json:"delivery_time" validate:"required"`
	Description  string `json:"description" validate:"required"`
}

type Answer struct {
	Text     string   `json:"answer_text"`
	FileURLs []string `json:"answer_file_urls"`
}

type Countdown struct {
	QuestionID string `json:"question_id"`
	Remaining  string `json:"remaining"`
	Display    string `json:"display"`
	Expired    bool   `json:"expired"`
}
