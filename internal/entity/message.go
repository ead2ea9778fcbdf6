package entity

import "time"

type MessageKind string

const (
	KindColdEmail MessageKind = "cold_email"
	KindFollowUp1 MessageKind = "followup_1"
	KindFollowUp2 MessageKind = "followup_2"
)

// MessageKinds lists the sequence in send order.
var MessageKinds = []MessageKind{KindColdEmail, KindFollowUp1, KindFollowUp2}

func ParseMessageKind(s string) (MessageKind, error) {
	for _, k := range MessageKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &InvalidInputError{Field: "message_kind", Message: "must be cold_email, followup_1 or followup_2"}
}

// IsFollowUp reports whether the kind is part of the follow-up sequence.
func (k MessageKind) IsFollowUp() bool {
	return k.FollowUpIndex() > 0
}

func (k MessageKind) FollowUpIndex() int {
	switch k {
	case KindFollowUp1:
		return 1
	case KindFollowUp2:
		return 2
	default:
		return 0
	}
}

// SendAfterDays is the fixed delay, counted from the cold email.
func (k MessageKind) SendAfterDays() int {
	switch k {
	case KindFollowUp1:
		return 3
	case KindFollowUp2:
		return 7
	default:
		return 0
	}
}

// Temperature is the sampling temperature used when generating this kind.
func (k MessageKind) Temperature() float64 {
	if k.IsFollowUp() {
		return 0.8
	}
	return 0.7
}

// WordRange is the body length bound given to the model.
func (k MessageKind) WordRange() string {
	if k.IsFollowUp() {
		return "100-150"
	}
	return "150-200"
}

type GeneratedMessage struct {
	Type              MessageKind `json:"type"`
	Subject           string      `json:"subject"`
	Body              string      `json:"body"`
	SendAfterDays     *int        `json:"send_after_days,omitempty"`
	SuggestedSendDate *time.Time  `json:"suggested_send_date,omitempty"`
	GeneratedAt       time.Time   `json:"generated_at"`
}
