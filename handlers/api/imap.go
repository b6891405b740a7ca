package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"

	"github.com/emersion/go-imap"
	client "github.com/emersion/go-imap/client"

	"entitled/models"
	"entitled/utils"
)

// IMAPSource serves emails from a live IMAP mailbox instead of the
// bundled fixtures. It satisfies EmailSource so the rest of the facade
// does not care which backend it talks to.
type IMAPSource struct {
	client   *client.Client
	username string
	folder   string
	limit    uint32
}

// NewIMAPSource dials the server over TLS, logs in and selects INBOX
// as the working folder
func NewIMAPSource(server string, port int, email, password string) (*IMAPSource, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", server, port), nil)
	if err != nil {
		utils.Log.Error("DialTLS %s:%d connection err: %v", server, port, err)
		return nil, fmt.Errorf("connection error: %v", err)
	}

	if err := c.Login(email, password); err != nil {
		c.Logout()
		utils.Log.Error("IMAP login %s failed: %v", email, err)
		return nil, fmt.Errorf("login error: %v", err)
	}

	return &IMAPSource{client: c, username: email, folder: "INBOX", limit: 50}, nil
}

// Close logs out of the IMAP session
func (s *IMAPSource) Close() error {
	return s.client.Logout()
}

// Emails fetches the most recent messages from the working folder and
// maps them onto the transaction email model
func (s *IMAPSource) Emails(ctx context.Context) ([]models.Email, error) {
	mbox, err := s.client.Select(s.folder, true)
	if err != nil {
		return nil, fmt.Errorf("error selecting folder %s: %v", s.folder, err)
	}
	if mbox.Messages == 0 {
		return []models.Email{}, nil
	}

	from := uint32(1)
	if mbox.Messages > s.limit {
		from = mbox.Messages - s.limit + 1
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddRange(from, mbox.Messages)

	var section imap.BodySectionName
	items := []imap.FetchItem{
		imap.FetchEnvelope,
		imap.FetchFlags,
		imap.FetchUid,
		section.FetchItem(),
	}

	messages := make(chan *imap.Message, s.limit)
	done := make(chan error, 1)
	go func() {
		done <- s.client.Fetch(seqSet, items, messages)
	}()

	var emails []models.Email
	for msg := range messages {
		select {
		case <-ctx.Done():
			// Drain so the fetch goroutine can finish
			for range messages {
			}
			<-done
			return nil, ctx.Err()
		default:
		}

		email, err := s.processMessage(msg)
		if err != nil {
			utils.Log.Warn("Error processing message %d: %v", msg.Uid, err)
			continue
		}
		emails = append(emails, email)
	}

	if err := <-done; err != nil {
		return emails, fmt.Errorf("error during fetch: %v", err)
	}
	return emails, nil
}

// EmailByID fetches one message by its UID, returning (nil, nil) when
// the mailbox has no such message
func (s *IMAPSource) EmailByID(ctx context.Context, id string) (*models.Email, error) {
	if _, err := s.client.Select(s.folder, true); err != nil {
		return nil, fmt.Errorf("error selecting folder %s: %v", s.folder, err)
	}

	var uid uint32
	if _, err := fmt.Sscanf(id, "%d", &uid); err != nil {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	var section imap.BodySectionName
	items := []imap.FetchItem{
		imap.FetchEnvelope,
		imap.FetchFlags,
		imap.FetchUid,
		section.FetchItem(),
	}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.client.UidFetch(seqSet, items, messages)
	}()

	var found *models.Email
	for msg := range messages {
		email, err := s.processMessage(msg)
		if err != nil {
			utils.Log.Warn("Error processing message %d: %v", msg.Uid, err)
			continue
		}
		found = &email
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("error during fetch: %v", err)
	}
	return found, nil
}

// processMessage maps one IMAP message onto the email model. HTML parts
// are sanitized before storage so downstream rendering never sees raw
// markup from the wire.
func (s *IMAPSource) processMessage(msg *imap.Message) (models.Email, error) {
	email := models.Email{
		ID:        fmt.Sprintf("%d", msg.Uid),
		Recipient: s.username,
	}

	for _, flag := range msg.Flags {
		switch flag {
		case imap.SeenFlag:
			email.IsRead = true
		case imap.FlaggedFlag:
			email.IsStarred = true
		}
	}

	if msg.Envelope != nil {
		email.Subject = msg.Envelope.Subject
		email.Timestamp = utils.FormatRelativeTime(msg.Envelope.Date)

		if len(msg.Envelope.From) > 0 && msg.Envelope.From[0] != nil {
			from := msg.Envelope.From[0]
			if from.PersonalName != "" {
				email.Sender = from.PersonalName
			} else {
				email.Sender = from.Address()
			}
		}
		for _, addr := range msg.Envelope.Cc {
			if addr != nil {
				email.Cc = append(email.Cc, addr.Address())
			}
		}
	}

	var section imap.BodySectionName
	r := msg.GetBody(&section)
	if r == nil {
		return email, nil
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return email, fmt.Errorf("error reading body: %v", err)
	}
	m, err := mail.ReadMessage(bytes.NewReader(body))
	if err != nil {
		return email, fmt.Errorf("error parsing message: %v", err)
	}

	contentType := m.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err == nil && strings.HasPrefix(mediaType, "multipart/") {
		readParts(&email, m.Body, params["boundary"])
	} else {
		bodyData, err := io.ReadAll(m.Body)
		if err == nil {
			email.Content = string(bodyData)
		}
	}

	return email, nil
}

// readParts walks a multipart body, collecting attachment metadata and
// the first text part onto the email. Two consecutive part errors
// abort the walk; a stream with a persistent error would otherwise
// never reach EOF.
func readParts(email *models.Email, body io.Reader, boundary string) {
	mr := multipart.NewReader(body, boundary)
	partErrs := 0
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			partErrs++
			if partErrs > 1 {
				utils.Log.Warn("Giving up on multipart body: %v", err)
				break
			}
			utils.Log.Warn("Error getting next part: %v", err)
			continue
		}
		partErrs = 0

		partData, err := io.ReadAll(p)
		if err != nil {
			utils.Log.Warn("Error reading part: %v", err)
			continue
		}

		partType := p.Header.Get("Content-Type")
		disposition := p.Header.Get("Content-Disposition")
		switch {
		case strings.Contains(disposition, "attachment"):
			email.HasAttachments = true
			if _, dparams, err := mime.ParseMediaType(disposition); err == nil {
				email.Attachments = append(email.Attachments, models.Attachment{
					ID:       fmt.Sprintf("%s-%d", email.ID, len(email.Attachments)+1),
					Name:     dparams["filename"],
					MimeType: partType,
					Size:     fmt.Sprintf("%dKB", len(partData)/1024),
				})
			}
		case strings.Contains(partType, "text/plain") && email.Content == "":
			email.Content = string(partData)
		case strings.Contains(partType, "text/html") && email.Content == "":
			email.Content = utils.StripHTML(string(partData))
		}
	}
}
