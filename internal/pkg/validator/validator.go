package validator

import (
	"fmt"
	"strings"

	"github.com/s21platform/messaging-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateDirectMessage(recipientID, content, messageType string) error {
	if strings.TrimSpace(recipientID) == "" {
		return fmt.Errorf("%w: recipient is required", model.ErrValidationFailed)
	}

	return v.validateContent(content, messageType)
}

func (v *Validator) ValidateGroupMessage(groupID, content, messageType string) error {
	if strings.TrimSpace(groupID) == "" {
		return fmt.Errorf("%w: group is required", model.ErrValidationFailed)
	}

	return v.validateContent(content, messageType)
}

func (v *Validator) ValidateEdit(content string) error {
	return v.validateContent(content, model.TextMessageType)
}

func (v *Validator) ValidateReaction(emoji string) error {
	if strings.TrimSpace(emoji) == "" {
		return fmt.Errorf("%w: emoji is required", model.ErrValidationFailed)
	}

	if len([]rune(emoji)) > 16 {
		return fmt.Errorf("%w: emoji is too long", model.ErrValidationFailed)
	}

	return nil
}

func (v *Validator) ValidateAttachments(attachments []model.Attachment) error {
	for i, a := range attachments {
		if !model.ValidAttachmentKind(a.Kind) {
			return fmt.Errorf("%w: attachment %d has unsupported kind '%s'", model.ErrValidationFailed, i, a.Kind)
		}
		if strings.TrimSpace(a.URL) == "" {
			return fmt.Errorf("%w: attachment %d has no url", model.ErrValidationFailed, i)
		}
	}

	return nil
}

func (v *Validator) validateContent(content, messageType string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidationFailed)
	}

	if len([]rune(content)) > model.MaxContentLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidationFailed, model.MaxContentLength)
	}

	if !model.ValidMessageType(messageType) {
		return fmt.Errorf("%w: message type '%s' is not supported", model.ErrValidationFailed, messageType)
	}

	return nil
}
