package service

import (
	"errors"
	"testing"

	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
)

func TestMessageService(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewMessageService(repository.NewMessageRepository(db))

	cases := []struct {
		name  string
		input MessageInput
		want  error
	}{
		{name: "bad type", input: MessageInput{MessageType: 6, Subject: "s", Message: "m"}, want: ErrMessageTypeInvalid},
		{name: "no subject", input: MessageInput{MessageType: 2, Message: "m"}, want: ErrMessageSubjectRequired},
		{name: "no body", input: MessageInput{MessageType: 2, Subject: "s"}, want: ErrMessageBodyRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(1, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}

	message, err := svc.Create(1, MessageInput{Subject: "配送", Message: "太慢了", File: "message/images/a.png"})
	if err != nil {
		t.Fatalf("create message failed: %v", err)
	}
	if message.MessageType != models.MessageTypeLeave || message.UserID != 1 {
		t.Fatalf("unexpected message: %+v", message)
	}

	if list, _ := svc.List(2); len(list) != 0 {
		t.Fatalf("other user should see no messages")
	}
	if err := svc.Delete(2, message.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("other user must not delete, got %v", err)
	}
	if err := svc.Delete(1, message.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
