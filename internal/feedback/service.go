package feedback

import (
	"context"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/bilmem-net/ai-hediye/internal/config"
	"github.com/bilmem-net/ai-hediye/internal/logging"
	"github.com/bilmem-net/ai-hediye/internal/metrics"
)

const (
	MaxPerWindow = 5
	Window       = time.Hour
)

// Outcome describes what happened to an accepted submission.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeDevLog  Outcome = "dev_log"
	OutcomeTrapped Outcome = "trapped"
)

type Service struct {
	limiter    *Limiter
	mailer     Mailer
	cfg        config.FeedbackConfig
	production bool
	location   *time.Location
	now        func() time.Time
}

// NewService builds the feedback flow. mailer may be nil when SMTP is not
// configured; production is false only in development, where unsent feedback
// is logged instead of failing.
func NewService(cfg config.FeedbackConfig, mailer Mailer, production bool) *Service {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		loc = time.FixedZone("TRT", 3*60*60)
	}
	return &Service{
		limiter:    NewLimiter(MaxPerWindow, Window),
		mailer:     mailer,
		cfg:        cfg,
		production: production,
		location:   loc,
		now:        time.Now,
	}
}

// Limiter exposes the submission limiter, mainly for periodic sweeping.
func (s *Service) Limiter() *Limiter { return s.limiter }

// Submit rate limits by clientKey and delivers f. The caller validates f first.
func (s *Service) Submit(ctx context.Context, f Feedback, clientKey string) (Outcome, error) {
	log := logging.Ctx(ctx).With().Str("submitter", anonymize(clientKey)).Str("type", f.Type).Logger()

	if !s.limiter.Allow(clientKey) {
		log.Warn().Msg("feedback rate limited")
		return "", ErrRateLimited
	}

	if s.mailer == nil || !s.cfg.Configured() {
		if s.production {
			log.Error().Msg("SMTP configuration missing for feedback form")
			return "", ErrMailerNotConfigured
		}
		log.Info().
			Str("subject", f.Subject).
			Str("message", f.Message).
			Str("from", f.Email).
			Str("url", f.URL).
			Str("user_agent", f.UserAgent).
			Msg("feedback received (no SMTP config)")
		return OutcomeDevLog, nil
	}

	msg := s.compose(f, clientKey)
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Msg("failed to send feedback mail")
		return "", fmt.Errorf("send feedback: %w", err)
	}
	log.Info().Msg("feedback mail sent")
	return OutcomeSent, nil
}

func (s *Service) compose(f Feedback, clientKey string) Message {
	subject := f.Subject
	if subject == "" {
		subject = "No Subject"
	}
	topic := orDefault(f.Subject, "-")
	from := orDefault(f.Email, "Anonim")
	stamp := s.now().In(s.location).Format("02.01.2006 15:04:05")

	text := fmt.Sprintf(`Yeni Geri Bildirim:

Tip: %s
Konu: %s
Mesaj: %s

------------------------
Gönderen Email: %s
Sayfa: %s
Zaman: %s
IP: %s
User Agent: %s
`, f.Type, topic, f.Message, from, f.URL, stamp, clientKey, f.UserAgent)

	esc := html.EscapeString
	body := fmt.Sprintf(`<h3>Yeni Geri Bildirim</h3>
<p><strong>Tip:</strong> %s</p>
<p><strong>Konu:</strong> %s</p>
<p><strong>Mesaj:</strong></p>
<blockquote style="border-left: 4px solid #eee; padding-left: 10px; color: #555;">
  %s
</blockquote>
<hr>
<p><small><strong>Email:</strong> %s</small></p>
<p><small><strong>Sayfa:</strong> %s</small></p>
<p><small><strong>Zaman:</strong> %s</small></p>
`, esc(f.Type), esc(topic), strings.ReplaceAll(esc(f.Message), "\n", "<br>"), esc(from), esc(f.URL), stamp)

	return Message{
		FromName: "Feedback Form",
		From:     s.cfg.EmailUser,
		To:       s.cfg.Recipient(),
		ReplyTo:  f.Email,
		Subject:  fmt.Sprintf("[Feedback: %s] %s - AI Hediye", f.Type, subject),
		Text:     text,
		HTML:     body,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// anonymize returns a short stable digest so log lines can be correlated
// without recording the client address.
func anonymize(key string) string {
	sum := blake2b.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func recordOutcome(outcome string) {
	metrics.FeedbackTotal.WithLabelValues(outcome).Inc()
}
