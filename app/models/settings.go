package models

import "encoding/json"

// Settings is the singleton site configuration document. The four known
// fields cover what the site actually renders; any additional string keys a
// client saves are kept in Extra and flattened on marshal. The document is
// replaced wholesale, never merged.
type Settings struct {
	SiteName        string
	SiteDescription string
	DiscordLink     string
	YoutubeLink     string
	Extra           map[string]string
}

func (s Settings) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(s.Extra)+4)
	for k, v := range s.Extra {
		obj[k] = v
	}
	obj["siteName"] = s.SiteName
	obj["siteDescription"] = s.SiteDescription
	if s.DiscordLink != "" {
		obj["discordLink"] = s.DiscordLink
	}
	if s.YoutubeLink != "" {
		obj["youtubeLink"] = s.YoutubeLink
	}
	return json.Marshal(obj)
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*s = Settings{Extra: make(map[string]string)}
	for k, v := range obj {
		str, ok := v.(string)
		if !ok {
			continue
		}
		switch k {
		case "siteName":
			s.SiteName = str
		case "siteDescription":
			s.SiteDescription = str
		case "discordLink":
			s.DiscordLink = str
		case "youtubeLink":
			s.YoutubeLink = str
		default:
			s.Extra[k] = str
		}
	}
	return nil
}
