package types

// Project is a single portfolio entry shown inside a committed timeline.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Github       string   `json:"github,omitempty"`
	Image        string   `json:"image,omitempty"`
	Featured     bool     `json:"featured"`
}

// PersonalInfo is the owner blurb rendered in the singularity scene.
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Available bool   `json:"available"`
	ResumeURL string `json:"resumeUrl,omitempty"`
}

// SocialLinks are free-form contact links.
type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Content is the full portfolio data set. Projects and skills are keyed by
// the timeline identifier ("data", "comic", "web3").
type Content struct {
	Personal PersonalInfo         `json:"personal"`
	Social   SocialLinks          `json:"social"`
	Projects map[string][]Project `json:"projects"`
	Skills   map[string][]string  `json:"skills"`
}

// ProjectsFor returns the projects of t with featured entries first,
// preserving the original order inside each group.
func (c *Content) ProjectsFor(t Timeline) []Project {
	if c == nil {
		return nil
	}
	all := c.Projects[t.String()]
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	for _, p := range all {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// SkillsFor returns the skills listed under t.
func (c *Content) SkillsFor(t Timeline) []string {
	if c == nil {
		return nil
	}
	return c.Skills[t.String()]
}
