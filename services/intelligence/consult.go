// File: services/intelligence/consult.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"labport/models"
	"labport/utils"

	"github.com/google/uuid"
)

const (
	fallbackReplyBN = "দুঃখিত, একটি ত্রুটি হয়েছে। দয়া করে আপনার ইন্টারনেট সংযোগ পরীক্ষা করুন।"
	fallbackReplyEN = "Sorry, an error occurred. Please check your internet connection."

	inflightTTL = 90 * time.Second
)

// ConsultService answers symptom-triage questions for the lab test flow.
// Replies are advisory only and always recommend seeing a doctor.
type ConsultService interface {
	Consult(ctx context.Context, sessionID string, lang models.Language, symptoms string) (models.ConsultResponse, error)
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Reset(ctx context.Context, sessionID string) error
}

type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type DefaultConsultService struct {
	Generator TextGenerator
	Store     *RedisContextStore
}

// ErrConsultBusy signals that a reply for this session is still being
// generated. Callers surface it as a retry-later condition, not a failure.
var ErrConsultBusy = fmt.Errorf("a consult reply is already in progress")

func (s *DefaultConsultService) Consult(ctx context.Context, sessionID string, lang models.Language, symptoms string) (models.ConsultResponse, error) {
	logger := utils.GetLogger()

	// When the lock store is unreachable the consult proceeds unguarded
	// rather than going dark.
	acquired, err := s.Store.TryAcquire(ctx, sessionID, inflightTTL)
	if err != nil {
		logger.Sugar().Warnf("failed to acquire consult lock for %s: %v", sessionID, err)
	}
	if err == nil && !acquired {
		return models.ConsultResponse{}, ErrConsultBusy
	}
	if err == nil {
		defer func() {
			if relErr := s.Store.Release(context.Background(), sessionID); relErr != nil {
				logger.Sugar().Warnf("failed to release consult lock for %s: %v", sessionID, relErr)
			}
		}()
	}

	reply := s.generate(ctx, lang, symptoms)

	userMsg := models.ChatMessage{ID: uuid.New().String(), Role: "user", Text: symptoms}
	aiMsg := models.ChatMessage{ID: uuid.New().String(), Role: "ai", Text: reply}
	if err := s.Store.Append(ctx, sessionID, userMsg, aiMsg); err != nil {
		logger.Sugar().Warnf("failed to persist consult transcript for %s: %v", sessionID, err)
	}

	return models.ConsultResponse{Reply: reply}, nil
}

// generate never surfaces an error. Any failure from the model collapses
// into the localized apology so the chat surface stays usable offline.
func (s *DefaultConsultService) generate(ctx context.Context, lang models.Language, symptoms string) string {
	logger := utils.GetLogger()

	text, err := s.Generator.GenerateContent(ctx, buildTriagePrompt(lang, symptoms))
	if err != nil {
		logger.Sugar().Errorf("consult generation failed: %v", err)
		return fallbackReply(lang)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackReply(lang)
	}
	return text
}

func (s *DefaultConsultService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return s.Store.Transcript(ctx, sessionID)
}

func (s *DefaultConsultService) Reset(ctx context.Context, sessionID string) error {
	return s.Store.Clear(ctx, sessionID)
}

func fallbackReply(lang models.Language) string {
	if lang == models.LangEnglish {
		return fallbackReplyEN
	}
	return fallbackReplyBN
}

func buildTriagePrompt(lang models.Language, symptoms string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful medical assistant for a lab test booking app in Bangladesh. ")
	sb.WriteString("A user describes their symptoms or asks a health question. ")
	sb.WriteString("Suggest which lab tests might be relevant as short bullet points, ")
	sb.WriteString("and always advise the user to consult a doctor for a proper diagnosis. ")
	sb.WriteString("Keep the answer brief and practical. Do not prescribe medication.\n")
	if lang == models.LangEnglish {
		sb.WriteString("Reply in English.\n")
	} else {
		sb.WriteString("Reply in Bengali (Bangla).\n")
	}
	sb.WriteString("\nUser: ")
	sb.WriteString(symptoms)
	return sb.String()
}
