package cli

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/svcurls/svcurls/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI
// flags. Near-miss values get a suggestion in the error message.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return parseOutputFormatValue(cmd.String("format"))
}

func parseOutputFormatValue(value string) (serializer.Format, error) {
	outFormat := serializer.Format(value)
	if outFormat.IsUnknown() {
		if suggestion := closestFormat(value); suggestion != "" {
			return "", fmt.Errorf("unknown output format: %q (did you mean %q?)", outFormat, suggestion)
		}
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %v", outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}

// closestFormat returns the supported format within edit distance 2 of s,
// or empty when nothing is close enough to suggest.
func closestFormat(s string) string {
	best := ""
	bestDist := 3
	for _, f := range serializer.SupportedFormats() {
		if d := levenshtein.ComputeDistance(s, string(f)); d < bestDist {
			best, bestDist = string(f), d
		}
	}
	return best
}
