package models

// Theme is the colour palette derived from a website's template id. Values
// are CSS hex colours shared verbatim with the shell.
type Theme struct {
	Background string `json:"backgroundColor"`
	Accent     string `json:"accentBgColor"`
	Surface    string `json:"surfaceColor"`
	Text       string `json:"textColor"`
	TextMuted  string `json:"secondaryTextColor"`
	ButtonBg   string `json:"buttonBgColor"`
	ButtonText string `json:"buttonTextColor"`
	Border     string `json:"borderColor"`
	Link       string `json:"linkColor"`
	Error      string `json:"errorColor"`
	Success    string `json:"successColor"`
	Warning    string `json:"warningColor"`
}
