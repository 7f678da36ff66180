package updates

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Application holds the fields read from an update's companion
// application_<stamp>.ini file.
type Application struct {
	BuildID string
	Version string
}

// LoadApplication parses the companion INI file at path. Both App.BuildID and
// App.Version must be present; an update shipped without them is a defect in
// the deployed artifact set.
func LoadApplication(path string) (*Application, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("reading application ini: %w", err)
	}
	sec := f.Section("App")
	buildID, err := sec.GetKey("BuildID")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	version, err := sec.GetKey("Version")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Application{
		BuildID: buildID.String(),
		Version: version.String(),
	}, nil
}
