package crosswalk

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/timber-cli/internal/model"
)

// glSpeciesBuckets collapses the Great Lakes vendor's species labels into
// the canonical bucket set used for the price join. Many-to-one; labels
// not listed here pass through unchanged (identity fallback).
var glSpeciesBuckets = map[string]string{
	"Maple Unspecified":  "Maple",
	"Mixed Hdwd":         "Hardwood",
	"Mixed Sftwd":        "Pine",
	"Other Hdwd":         "Hardwood",
	"Other Sfwd":         "Pine",
	"Oak Unspecified":    "Oak",
	"Other Hardwood":     "Hardwood",
	"Other Softwood":     "Softwood",
	"Pine Unspecified":   "Pine",
	"Spruce Unspecified": "Spruce",
	"Spruce/Fir":         "Spruce",
	"White Birch":        "Paper Birch",
	"Scrub Oak":          "Oak",
}

// CanonicalGLSpecies maps a Great Lakes vendor species label to its
// canonical bucket, lowercased for the join. Unknown labels fall back to
// their own lowercased form.
func CanonicalGLSpecies(label string) string {
	label = strings.TrimSpace(label)
	if bucket, ok := glSpeciesBuckets[label]; ok {
		return strings.ToLower(bucket)
	}
	return strings.ToLower(label)
}

// BucketMap maps an inventory species class to the price table's species
// bucket for one region. This is configuration, not inference: the South
// vendor prices Pine/Oak, the Great Lakes vendor prices lowercased
// common-name buckets.
type BucketMap map[model.SpeciesClass]string

// SouthBuckets is the default South class-to-bucket mapping.
func SouthBuckets() BucketMap {
	return BucketMap{model.Softwood: "Pine", model.Hardwood: "Oak"}
}

// GreatLakesBuckets is the default Great Lakes class-to-bucket mapping.
func GreatLakesBuckets() BucketMap {
	return BucketMap{model.Softwood: "pine", model.Hardwood: "hardwood"}
}

// bucketConfigFile is the on-disk override format for the class-to-bucket
// mappings.
type bucketConfigFile struct {
	South      map[string]string `yaml:"south"`
	GreatLakes map[string]string `yaml:"greatlakes"`
}

// LoadBucketMap returns the class-to-bucket mapping for a region. When
// path is non-empty the YAML file overrides the built-in defaults, letting
// analysts retarget the join without a rebuild.
func LoadBucketMap(region model.Region, path string) (BucketMap, error) {
	defaults := SouthBuckets()
	if region == model.RegionGreatLakes {
		defaults = GreatLakesBuckets()
	}
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "crosswalk: read bucket config %s", path)
	}
	var cfg bucketConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrapf(err, "crosswalk: parse bucket config %s", path)
	}

	section := cfg.South
	if region == model.RegionGreatLakes {
		section = cfg.GreatLakes
	}
	for class, bucket := range section {
		switch strings.ToLower(class) {
		case "softwood":
			defaults[model.Softwood] = bucket
		case "hardwood":
			defaults[model.Hardwood] = bucket
		default:
			return nil, eris.Errorf("crosswalk: bucket config %s has unknown species class %q", path, class)
		}
	}
	return defaults, nil
}
