package observability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/baysideops/rotabot/pkg/models"
)

// Notifier delivers a computed assignment to the team channel.
type Notifier interface {
	Notify(assignment models.Assignment) error
}

// DeliveryError reports a failed webhook delivery. It is distinguishable
// from configuration errors so the caller can treat the run as partially
// successful: the assignment was computed but not announced, and history is
// left unsaved for a clean external retry.
type DeliveryError struct {
	Status int
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delivering assignment: %v", e.Err)
	}
	return fmt.Sprintf("delivering assignment: webhook returned status %d", e.Status)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// slackNotifier posts the assignment message to a Slack-compatible webhook.
type slackNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewSlackNotifier creates a Notifier that posts to the given webhook URL.
// The URL is treated as an opaque bearer secret.
func NewSlackNotifier(webhookURL string) Notifier {
	return &slackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

// Notify posts the formatted assignment. Delivery is fire-and-forget: no
// retries, failure surfaced to the caller as a DeliveryError.
func (s *slackNotifier) Notify(assignment models.Assignment) error {
	body, err := json.Marshal(slackPayload{Text: BuildMessage(assignment)})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &DeliveryError{Status: resp.StatusCode}
	}
	return nil
}

// logNotifier writes the formatted message to a writer instead of posting
// it. Used for dry runs and when no webhook URL is configured.
type logNotifier struct {
	out io.Writer
}

// NewLogNotifier creates a Notifier that prints the message to out.
func NewLogNotifier(out io.Writer) Notifier {
	return &logNotifier{out: out}
}

func (l *logNotifier) Notify(assignment models.Assignment) error {
	_, err := fmt.Fprintln(l.out, BuildMessage(assignment))
	return err
}

// BuildMessage renders the assignment as the Slack-formatted announcement:
// the Service Desk pair, each remaining person's Operations tasks, and the
// onboarding line when scheduled.
func BuildMessage(assignment models.Assignment) string {
	var b strings.Builder

	b.WriteString("\U0001f5a5️ *Service Desk*\n")
	if len(assignment.ServiceDesk) == 0 {
		b.WriteString("    (none)\n")
	}
	for _, person := range assignment.ServiceDesk {
		fmt.Fprintf(&b, "    %s\n", person)
	}

	b.WriteString("\n⚙️ *Operations*\n")
	if len(assignment.Remaining) == 0 {
		b.WriteString("    (none)\n")
	}
	for _, person := range assignment.Remaining {
		fmt.Fprintf(&b, "    %s\n", person)
		for _, task := range assignment.Operations[person] {
			fmt.Fprintf(&b, "        • %s\n", task)
		}
	}

	if assignment.Onboarding != nil {
		fmt.Fprintf(&b, "\n\U0001f44b *Onboarding Support (%s)*\n", assignment.Onboarding.Type)
		fmt.Fprintf(&b, "    %s\n", assignment.Onboarding.Person)
	}

	return strings.TrimRight(b.String(), "\n")
}
