package prompt

const coldEmailSystem = `You are an expert B2B sales email writer. Create personalized, engaging cold outreach emails that feel authentic and human. Focus on the prospect's specific challenges and how your solution can help. Keep emails concise (150-200 words), conversational, and always include a clear, low-pressure call-to-action. Return your response in JSON format with 'subject' and 'body' fields.`

const followUpSystem = `You are an expert at writing natural, non-pushy follow-up emails that re-engage prospects. Your follow-ups are brief (100-150 words), add new value or perspective, and feel genuinely helpful rather than sales-driven. Always include an easy opt-out and keep the tone friendly and professional. Return your response in JSON format with 'subject' and 'body' fields.`

const prospectSection = `PROSPECT DETAILS:
- Name: {{.name}}
- Job Title: {{.job_title}}
- Company: {{.company}}
- Industry: {{.industry}}
- Company Size: {{.company_size_category}}
- Role Level: {{.role_level}}
- Key Priorities: {{.priorities}}
- Communication Style: {{.communication_style}}
- Likely Pain Points: {{.pain_points}}
- Industry Trends: {{.key_trends}}
- Industry Challenges: {{.challenges}}

PERSONALIZATION HOOKS:
{{range .hooks}}- {{.}}
{{else}}- (none)
{{end}}
PRODUCT/SERVICE INFORMATION:
- Name: {{.product_name}}
- Description: {{.product_description}}
- Key Benefits: {{.benefits}}
- Target Outcome: {{.target_outcome}}
- Pricing Model: {{.pricing_model}}
- Use Cases: {{.use_cases}}
- Differentiators: {{.differentiators}}
`

const coldEmailUser = `Write a personalized cold email for this prospect:

` + prospectSection + `
EMAIL REQUIREMENTS:
1. Use the prospect's name and reference their specific role/company
2. Connect their likely challenges to your solution's benefits
3. Keep it conversational and human (avoid corporate speak)
4. Match the prospect's communication style: {{.communication_style}}
5. Include social proof or credibility indicators if relevant
6. End with a soft, low-pressure call-to-action
7. Subject line should be intriguing but not salesy
8. Total length: {{.word_range}} words maximum

Return as JSON with exactly two string fields: "subject" and "body".`

const followUpUser = `Write follow-up email #{{.followup_number}} (to be sent {{.send_after_days}} days after the original email):

` + prospectSection + `
ORIGINAL EMAIL CONTEXT:
- Subject: {{.original_subject}}
- Use it for context only; do not repeat its content or subject line

FOLLOW-UP REQUIREMENTS:
1. Approach: {{.approach}}
2. Tone: {{.tone}}
3. Reference the original email briefly without being repetitive
4. Add NEW value (insight, resource, different perspective)
5. Keep it short and scannable ({{.word_range}} words max)
6. Include a soft call-to-action
7. Always provide an easy opt-out option
8. Subject line should be different from the original
9. Timing: this message is sent on day {{.send_after_days}} of the sequence

FOLLOW-UP STRATEGIES TO CONSIDER:
- Share a relevant industry insight or trend
- Offer a useful resource (guide, template, case study)
- Ask for their perspective on an industry challenge
- Mention a mutual connection or similar company success
- Provide a specific, small commitment (5-minute call, quick question)

Return as JSON with exactly two string fields: "subject" and "body".`
