package listing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gone/internal/branchstatus"
	"github.com/temirov/gone/internal/utils/flags"
)

const (
	unknownFormatMessageConstant       = "unknown output format"
	unknownFormatErrorTemplateConstant = "%w %q"
	sectionTitleTemplateConstant       = "%s:\n"
	currentEntryTemplateConstant       = "    *%s\n"
	entryTemplateConstant              = "    %s\n"
	yamlIndentConstant                 = 2
	renderYAMLErrorTemplateConstant    = "failed to render yaml listing: %w"
	renderTOMLErrorTemplateConstant    = "failed to render toml listing: %w"
	renderTextErrorTemplateConstant    = "failed to render text listing: %w"
)

// Format selects the listing output encoding.
type Format string

const (
	// FormatText prints indented branch lines under styled section titles.
	FormatText Format = "text"
	// FormatYAML prints the report as a YAML document.
	FormatYAML Format = "yaml"
	// FormatTOML prints the report as a TOML document.
	FormatTOML Format = "toml"
)

// DefaultFormat is applied when no format is configured.
const DefaultFormat = FormatText

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New(unknownFormatMessageConstant)

// FormatChoices lists the accepted format values.
func FormatChoices() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat converts a case-insensitive value into a Format. An empty value yields DefaultFormat.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) == 0 {
		return DefaultFormat, nil
	}
	if choice, found := flags.MatchChoice(normalized, FormatChoices()); found {
		return Format(choice), nil
	}
	return "", fmt.Errorf(unknownFormatErrorTemplateConstant, ErrUnknownFormat, value)
}

// Renderer writes a Report to an output stream.
type Renderer interface {
	Render(writer io.Writer, report Report) error
}

// NewRenderer returns the renderer for the format.
func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatText:
		return textRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	case FormatTOML:
		return tomlRenderer{}, nil
	default:
		return nil, fmt.Errorf(unknownFormatErrorTemplateConstant, ErrUnknownFormat, string(format))
	}
}

type textRenderer struct{}

// Render styles titles through a lipgloss renderer bound to the writer, so
// output that is not a terminal stays plain.
func (textRenderer) Render(writer io.Writer, report Report) error {
	styleRenderer := lipgloss.NewRenderer(writer)
	titleStyle := styleRenderer.NewStyle().Bold(true)
	currentStyle := styleRenderer.NewStyle().Foreground(lipgloss.Color("2"))
	goneStyle := styleRenderer.NewStyle().Foreground(lipgloss.Color("1"))

	var builder strings.Builder
	for _, section := range report.Sections {
		builder.WriteString(fmt.Sprintf(sectionTitleTemplateConstant, titleStyle.Render(section.Title)))
		for _, entry := range section.Entries {
			display := entry.Branch.String()
			switch {
			case entry.Current:
				builder.WriteString(fmt.Sprintf(currentEntryTemplateConstant, currentStyle.Render(display)))
			case entry.Branch.HasStatus(branchstatus.RemoteStatusGone):
				builder.WriteString(fmt.Sprintf(entryTemplateConstant, goneStyle.Render(display)))
			default:
				builder.WriteString(fmt.Sprintf(entryTemplateConstant, display))
			}
		}
	}

	if _, writeError := io.WriteString(writer, builder.String()); writeError != nil {
		return fmt.Errorf(renderTextErrorTemplateConstant, writeError)
	}
	return nil
}

type listingDocument struct {
	Repository string            `yaml:"repository" toml:"repository"`
	Head       string            `yaml:"head" toml:"head"`
	Sections   []sectionDocument `yaml:"sections" toml:"sections"`
}

type sectionDocument struct {
	Title    string           `yaml:"title" toml:"title"`
	Branches []branchDocument `yaml:"branches" toml:"branches"`
}

type branchDocument struct {
	Name         string `yaml:"name" toml:"name"`
	Current      bool   `yaml:"current" toml:"current"`
	Remote       string `yaml:"remote,omitempty" toml:"remote,omitempty"`
	RemoteBranch string `yaml:"remote_branch,omitempty" toml:"remote_branch,omitempty"`
	Status       string `yaml:"status,omitempty" toml:"status,omitempty"`
}

func newListingDocument(report Report) listingDocument {
	headLabel := report.Head.String()
	if headBranch, onBranch := report.Head.Branch(); onBranch {
		headLabel = headBranch.Name
	}

	sections := make([]sectionDocument, 0, len(report.Sections))
	for _, section := range report.Sections {
		branches := make([]branchDocument, 0, len(section.Entries))
		for _, entry := range section.Entries {
			document := branchDocument{Name: entry.Branch.Name, Current: entry.Current}
			if entry.Branch.IsTracking() {
				document.Remote = entry.Branch.Remote.RemoteName
				document.RemoteBranch = entry.Branch.Remote.BranchName
				document.Status = entry.Branch.Remote.Status.String()
			}
			branches = append(branches, document)
		}
		sections = append(sections, sectionDocument{Title: section.Title, Branches: branches})
	}

	return listingDocument{Repository: report.RepositoryPath, Head: headLabel, Sections: sections}
}

type yamlRenderer struct{}

func (yamlRenderer) Render(writer io.Writer, report Report) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(newListingDocument(report)); encodeError != nil {
		return fmt.Errorf(renderYAMLErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(renderYAMLErrorTemplateConstant, closeError)
	}
	return nil
}

type tomlRenderer struct{}

func (tomlRenderer) Render(writer io.Writer, report Report) error {
	if encodeError := toml.NewEncoder(writer).Encode(newListingDocument(report)); encodeError != nil {
		return fmt.Errorf(renderTOMLErrorTemplateConstant, encodeError)
	}
	return nil
}
