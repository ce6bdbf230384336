// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/presidential-roast/internal/ledger"
	"github.com/jonathan/presidential-roast/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSignalBundle outputs a human-readable summary of the extracted
// submission signals.
func (p *Printer) PrintSignalBundle(bundle *types.SignalBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category: %s\n", bundle.Category))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", bundle.WordCount))

	switch bundle.Category {
	case types.CategoryResume:
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Education:   %s\n", yesNo(bundle.HasEducation)))
		sb.WriteString(fmt.Sprintf("Experience:  %s\n", yesNo(bundle.HasExperience)))
		if bundle.Entity != "" {
			sb.WriteString(fmt.Sprintf("Employer:    %s\n", bundle.Entity))
		}
		if len(bundle.Skills) > 0 {
			sb.WriteString("Skills:\n")
			count := min(len(bundle.Skills), maxItemsToShow)
			for i := 0; i < count; i++ {
				sb.WriteString(fmt.Sprintf("  • %s\n", bundle.Skills[i]))
			}
			if len(bundle.Skills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Skills)-maxItemsToShow))
			}
		}
		if len(bundle.Buzzwords) > 0 {
			buzz := strings.Join(bundle.Buzzwords, ", ")
			if len(buzz) > 40 {
				buzz = buzz[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("Buzzwords:   %s\n", buzz))
		}
	case types.CategoryIdea:
		sb.WriteString("\n")
		topics := []string{}
		if bundle.MentionsTech {
			topics = append(topics, "tech")
		}
		if bundle.MentionsProduct {
			topics = append(topics, "product")
		}
		if bundle.MentionsService {
			topics = append(topics, "service")
		}
		if bundle.MentionsPlatform {
			topics = append(topics, "platform")
		}
		if bundle.MentionsFinance {
			topics = append(topics, "finance")
		}
		if len(topics) > 0 {
			sb.WriteString(fmt.Sprintf("Topics:      %s\n", strings.Join(topics, ", ")))
		}
		sb.WriteString(fmt.Sprintf("Detailed:    %s\n", yesNo(bundle.IsDetailed)))
		sb.WriteString(fmt.Sprintf("App pitch:   %s\n", yesNo(bundle.HasAppReference)))
	case types.CategoryTwitter:
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Handle:      @%s\n", bundle.Handle))
		sb.WriteString(fmt.Sprintf("Numbers:     %s\n", yesNo(bundle.HasNumbers)))
		sb.WriteString(fmt.Sprintf("Underscores: %s\n", yesNo(bundle.HasUnderscores)))
		sb.WriteString(fmt.Sprintf("All caps:    %s\n", yesNo(bundle.IsAllCaps)))
	}

	p.printBox("EXTRACTED SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoastResult outputs the final roast with its score breakdown.
func (p *Printer) PrintRoastResult(result *types.RoastResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	for _, line := range wrapText(result.Text, boxWidth-6) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Score:      %d/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Tokens:     %d ROAST\n", result.RewardTokens))
	if result.IsExecutiveOrder {
		sb.WriteString("Status:     EXECUTIVE ORDER\n")
	}
	sb.WriteString(result.Analysis)

	p.printBox("PRESIDENTIAL ROAST", sb.String())
}

// PrintRewardReceipt outputs both legs of a reward grant.
func (p *Printer) PrintRewardReceipt(receipt *ledger.RewardReceipt) {
	if receipt == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tokens:     %.0f ROAST\n", receipt.Transfer.Amount))
	sb.WriteString(fmt.Sprintf("Transfer:   %s\n", shorten(receipt.Transfer.Signature, 40)))
	if receipt.Transfer.Simulated {
		sb.WriteString("            (simulated)\n")
	}
	sb.WriteString(fmt.Sprintf("Mint:       %s\n", shorten(receipt.Mint.MintAddress, 40)))
	sb.WriteString(fmt.Sprintf("Name:       %s", receipt.Mint.Name))

	p.printBox("REWARD RECEIPT", sb.String())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// wrapText breaks text into lines at word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return lines
}
