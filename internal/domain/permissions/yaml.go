package permissions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fieldops/internal/domain/tenant"
)

// matrixFile is the on-disk layout of a permission matrix:
//
//	roles:
//	  technician:
//	    jobs: [read, update]
//	    invoices: [create, read]
type matrixFile struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}

// ParseYAML builds a Matrix from its YAML form. Roles absent from the document get no grants.
func ParseYAML(data []byte) (Matrix, error) {
	var f matrixFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Matrix{}, fmt.Errorf("parse permission matrix: %w", err)
	}
	if len(f.Roles) == 0 {
		return Matrix{}, fmt.Errorf("parse permission matrix: no roles defined")
	}

	grants := make(Grants, len(f.Roles))
	for role, resources := range f.Roles {
		row := make(map[Resource][]Action, len(resources))
		for res, actions := range resources {
			converted := make([]Action, 0, len(actions))
			for _, a := range actions {
				converted = append(converted, Action(a))
			}
			row[Resource(res)] = converted
		}
		grants[tenant.Role(role)] = row
	}
	return NewMatrix(grants)
}

// LoadYAML reads and parses a permission matrix file.
func LoadYAML(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("read permission matrix %s: %w", path, err)
	}
	return ParseYAML(data)
}
