package outreach

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Profile describes the sending business. Description is embedded in the
// prompt; Pitch and Signature complete the fallback message.
type Profile struct {
	Description string `yaml:"description"`
	Pitch       string `yaml:"pitch"`
	Signature   string `yaml:"signature"`
}

// DefaultProfile returns the hardware-store profile used when no profile file
// is configured.
func DefaultProfile() Profile {
	return Profile{
		Description: "As a hardware computer store, we offer tailored solutions for business computing needs, from workstations to networking.",
		Pitch: "As a hardware computer store, we offer tailored solutions that could help your business grow. " +
			"If you are interested in upgrading your computing infrastructure or need reliable hardware support, let's connect!",
		Signature: "[Your Name]",
	}
}

// LoadProfile reads a YAML profile from path. Fields missing from the file
// keep their default values. An empty path returns DefaultProfile.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, eris.Wrapf(err, "outreach: read profile %s", path)
	}

	var fromFile Profile
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Profile{}, eris.Wrapf(err, "outreach: parse profile %s", path)
	}

	if s := strings.TrimSpace(fromFile.Description); s != "" {
		p.Description = s
	}
	if s := strings.TrimSpace(fromFile.Pitch); s != "" {
		p.Pitch = s
	}
	if s := strings.TrimSpace(fromFile.Signature); s != "" {
		p.Signature = s
	}
	return p, nil
}
