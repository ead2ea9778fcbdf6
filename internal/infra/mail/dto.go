package mail

const (
	DefaultFrom      = "outreach@localhost"
	CampaignFileName = "complete_campaign.json"
)

// DraftExporter renders a campaign as files on disk. It never delivers mail.
type DraftExporter struct {
	BaseDir string
	From    string
}
