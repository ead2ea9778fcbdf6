package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

func printCampaign(w io.Writer, c *entity.Campaign) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nOUTBOUND SALES CAMPAIGN %s\n%s\n", rule, c.ID, rule)

	lead := c.Lead
	fmt.Fprintf(w, "\nTARGET PROSPECT:\n")
	fmt.Fprintf(w, "   Name: %s\n", orNA(lead.Name))
	fmt.Fprintf(w, "   Title: %s\n", orNA(lead.JobTitle))
	fmt.Fprintf(w, "   Company: %s (%d employees)\n", orNA(lead.Company), lead.CompanySize)
	fmt.Fprintf(w, "   Industry: %s\n", orNA(lead.Industry))

	s := c.Summary
	fmt.Fprintf(w, "\nCAMPAIGN STRATEGY:\n")
	fmt.Fprintf(w, "   Target Persona: %s\n", s.TargetPersona)
	fmt.Fprintf(w, "   Company Size: %s\n", s.CompanySize)
	fmt.Fprintf(w, "   Email Sequence: %d emails over %s\n", s.EmailSequenceCount, s.TotalCampaignDuration)
	fmt.Fprintf(w, "   Communication Style: %s\n", s.CommunicationStyle)

	if len(s.PrimaryPainPoints) > 0 {
		fmt.Fprintf(w, "\nIDENTIFIED PAIN POINTS:\n")
		for _, p := range s.PrimaryPainPoints {
			fmt.Fprintf(w, "   - %s\n", p)
		}
	}

	fmt.Fprintf(w, "\nCOLD EMAIL:\n")
	fmt.Fprintf(w, "   Subject: %s\n", c.ColdEmail.Subject)
	fmt.Fprintf(w, "   Body Preview: %s\n", preview(c.ColdEmail.Body, 100))

	fmt.Fprintf(w, "\nFOLLOW-UP SEQUENCE:\n")
	for i, f := range c.FollowUps {
		fmt.Fprintf(w, "   Follow-up #%d (Day %d):\n", i+1, f.Type.SendAfterDays())
		fmt.Fprintf(w, "     Subject: %s\n", f.Subject)
		fmt.Fprintf(w, "     Preview: %s\n", preview(f.Body, 80))
	}

	fmt.Fprintf(w, "\nEXECUTION TIMELINE:\n")
	for _, t := range c.Timeline {
		fmt.Fprintf(w, "   Day %d: %s - %s\n", t.Day, t.Action, t.Status)
	}

	fmt.Fprintf(w, "\nSUCCESS METRICS TO TRACK:\n")
	for _, m := range c.SuccessMetrics.PrimaryMetrics {
		benchmark, ok := c.SuccessMetrics.Benchmarks["cold_email_"+m]
		if !ok {
			benchmark = "Track manually"
		}
		fmt.Fprintf(w, "   - %s: %s\n", metricLabel(m), benchmark)
	}

	fmt.Fprintf(w, "\nNEXT STEPS:\n")
	for i, step := range c.NextSteps {
		fmt.Fprintf(w, "   %d. %s\n", i+1, step)
	}
}

func printExport(w io.Writer, dir string) {
	fmt.Fprintf(w, "\nCampaign files saved to '%s'\n", dir)
	fmt.Fprintf(w, "   - %s\n", mail.CampaignFileName)
	for _, k := range entity.MessageKinds {
		fmt.Fprintf(w, "   - %s.eml\n", k)
	}
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// metricLabel turns "reply_rate" into "Reply Rate".
func metricLabel(m string) string {
	words := strings.Split(m, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
