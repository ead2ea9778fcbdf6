package mail

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func NewDraftExporter(baseDir, from string) *DraftExporter {
	if from == "" {
		from = DefaultFrom
	}
	return &DraftExporter{
		BaseDir: baseDir,
		From:    from,
	}
}

// Export writes complete_campaign.json plus one .eml draft per message into
// a directory named after the campaign, and returns that directory.
func (e *DraftExporter) Export(c *entity.Campaign) (string, error) {
	dir := filepath.Join(e.BaseDir, "campaign_"+c.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	doc, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode campaign: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, CampaignFileName), doc, 0o644); err != nil {
		return "", fmt.Errorf("failed to write campaign file: %w", err)
	}

	for _, msg := range c.Messages() {
		path := filepath.Join(dir, string(msg.Type)+".eml")
		if err := e.writeDraft(path, c.Lead, msg); err != nil {
			return "", fmt.Errorf("failed to write %s draft: %w", msg.Type, err)
		}
	}

	return dir, nil
}

func (e *DraftExporter) writeDraft(path string, lead entity.EnrichedLeadProfile, msg entity.GeneratedMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.From)
	if lead.Email != "" {
		m.SetAddressHeader("To", lead.Email, lead.Name)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("X-Message-Type", string(msg.Type))
	days := 0
	if msg.SendAfterDays != nil {
		days = *msg.SendAfterDays
	}
	m.SetHeader("X-Send-After-Days", strconv.Itoa(days))
	if msg.SuggestedSendDate != nil {
		m.SetDateHeader("X-Suggested-Send-Date", *msg.SuggestedSendDate)
	}
	m.SetBody("text/plain", msg.Body)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
