package enrich

import "fmt"

// buildEnrichmentPrompt asks the model for a strict JSON object describing
// one scholarship reference.
func buildEnrichmentPrompt(reference string) string {
	return fmt.Sprintf(
		"You are a scholarship research assistant.\n\n"+
			"Task:\n"+
			"- Find current, accurate information about this scholarship:\n\n"+
			"  %q\n\n"+
			"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n"+
			"- Output a single JSON object.\n\n"+
			"The object must have these fields:\n"+
			"- \"title\": string, the exact scholarship name\n"+
			"- \"amount\": number or null (null if variable or unclear)\n"+
			"- \"deadline\": string, ISO format \"YYYY-MM-DD\"\n"+
			"- \"description\": string, 2-3 sentences on what the scholarship is for,\n"+
			"  who it is for, and what makes it special\n"+
			"- \"requirements\": array of strings, e.g. [\"GPA 3.0+\", \"Undergraduate\"]\n"+
			"- \"organization\": string, the awarding organization\n"+
			"- \"categories\": array of strings, e.g. [\"merit\", \"stem\", \"need-based\"]\n"+
			"- \"application_url\": string, the real application URL\n"+
			"- \"is_currently_active\": boolean, true only if currently accepting applications\n\n"+
			"Rules:\n"+
			"- If the amount is variable or unclear, use null.\n"+
			"- ALWAYS provide a realistic deadline.\n"+
			"- Make requirements realistic for this specific scholarship.\n"+
			"- Categories should be relevant (merit, need-based, stem, minority, etc.).\n\n"+
			"Return ONLY valid raw JSON.\n"+
			"Do NOT wrap the response in code fences.\n"+
			"Do NOT use ```json or any Markdown.\n"+
			"Output must begin with \"{\" and end with \"}\".\n",
		reference)
}
