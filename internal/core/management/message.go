package management

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/models"
)

// BrowseMessages returns a non-destructive snapshot of queue on connection id.
func (s *Service) BrowseMessages(ctx context.Context, id, queue string) ([]models.MessageDTO, error) {
	messages, err := s.engine.BrowseMessages(ctx, id, queue)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.MessageDTO, len(messages))
	for i, m := range messages {
		dtos[i] = messageToDTO(m)
	}
	return dtos, nil
}

// DeleteMessage removes the message whose hex-encoded identifier is msgID.
func (s *Service) DeleteMessage(ctx context.Context, id, queue, msgID string) error {
	raw, err := hex.DecodeString(msgID)
	if err != nil {
		return fmt.Errorf("message id '%s' is not valid hex: %w", msgID, err)
	}
	return s.engine.DeleteMessage(ctx, id, queue, raw)
}

// SendMessage puts one message on queue. Empty type and persistence fall
// back to datagram and as-queue-default.
func (s *Service) SendMessage(ctx context.Context, id, queue string, req models.SendMessageRequest) error {
	msgType, err := parseMessageType(req.Type)
	if err != nil {
		return err
	}
	persistence, err := parsePersistence(req.Persistence)
	if err != nil {
		return err
	}
	return s.engine.Send(ctx, id, queue, []byte(req.Payload), msgType, persistence, req.Priority)
}

func parseMessageType(token string) (engine.MessageType, error) {
	switch token {
	case "", "datagram":
		return engine.MessageTypeDatagram, nil
	case "request":
		return engine.MessageTypeRequest, nil
	case "reply":
		return engine.MessageTypeReply, nil
	case "report":
		return engine.MessageTypeReport, nil
	default:
		return engine.MessageTypeUnknown, fmt.Errorf("unknown message type '%s'", token)
	}
}

func parsePersistence(token string) (engine.Persistence, error) {
	switch token {
	case "", "asQueueDef":
		return engine.PersistenceAsQueueDef, nil
	case "persistent":
		return engine.PersistenceYes, nil
	case "notPersistent":
		return engine.PersistenceNo, nil
	default:
		return engine.PersistenceUnknown, fmt.Errorf("unknown persistence '%s'", token)
	}
}

func messageToDTO(m engine.Message) models.MessageDTO {
	dto := models.MessageDTO{
		ID:          m.HexID(),
		Position:    m.Position,
		Format:      m.Format.String(),
		Type:        m.Type.String(),
		Persistence: m.Persistence.String(),
		Priority:    m.Priority,
		Size:        m.Size,
		TotalLength: m.TotalLength,
		Truncated:   m.Truncated,
		PutTime:     m.PutTime,
		PutApplName: m.PutApplName,
		ReplyToQ:    m.ReplyToQ,
		Payload:     string(m.Payload),
	}
	if len(m.CorrelID) > 0 {
		dto.CorrelID = hex.EncodeToString(m.CorrelID)
	}
	return dto
}
