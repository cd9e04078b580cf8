// SPDX-License-Identifier: MIT

// Package vault implements the Markdown vault exporter (spec §4.10
// note, "Out-of-scope external collaborators"): a pure function from
// the hydrated graph to a directory of Obsidian-style notes, one file
// per Member/Bill/Committee, with YAML frontmatter and wiki-link body
// sections. It follows the same "write everything to a temp sibling,
// then promote" discipline the Cache Store (internal/cache) uses for
// atomic writes, and reuses its exact write-then-rename helper shape.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/tylermorales/ilga-graph/internal/domain/model"
	"github.com/tylermorales/ilga-graph/internal/graph"
	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
)

// Exporter is the vault output contract: a pure function of the graph
// (plus its derived analytics) to a set of files in dir. Implementations
// must be idempotent and must remove files left behind by entities that
// no longer exist in g (the stale-file sweep).
type Exporter interface {
	Export(ctx context.Context, dir string, g *graph.Graph, scorecards map[string]*model.Scorecard, moneyball map[string]*model.MoneyballProfile) error
}

// MarkdownExporter is the reference Exporter: one ".md" file per
// Member, Bill, and Committee, named per the contract's file-naming
// rule ({name}.md / {bill_number}.md / {committee_name}.md, slugified
// for filesystem safety), each with a YAML frontmatter block of the
// entity's scalar fields plus derived tags, and a body of wiki-links
// to related entities.
type MarkdownExporter struct{}

// NewMarkdownExporter constructs the reference vault exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

const fileExt = ".md"

// Export renders g into dir, overwriting any existing note for an
// entity that still exists and removing notes for entities that no
// longer do (spec: "stale-file sweep on re-export").
func (e *MarkdownExporter) Export(ctx context.Context, dir string, g *graph.Graph, scorecards map[string]*model.Scorecard, moneyball map[string]*model.MoneyballProfile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewConfig("VAULT_DIR", "cannot create vault directory: "+dir, err)
	}

	written := make(map[string]bool)

	for _, m := range g.Members {
		name := memberFilename(m)
		if err := e.writeNote(dir, name, renderMember(m, scorecards[m.MemberID], moneyball[m.MemberID])); err != nil {
			return err
		}
		written[name] = true
	}
	for _, b := range g.Bills {
		name := billFilename(b)
		if err := e.writeNote(dir, name, renderBill(b)); err != nil {
			return err
		}
		written[name] = true
	}
	for _, c := range g.Committees {
		name := committeeFilename(c)
		if err := e.writeNote(dir, name, renderCommittee(c)); err != nil {
			return err
		}
		written[name] = true
	}

	swept, err := e.sweep(dir, written)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "vault export complete",
		"members", len(g.Members),
		"bills", len(g.Bills),
		"committees", len(g.Committees),
		"swept", swept,
	)
	return nil
}

// writeNote atomically writes content to dir/filename, mirroring the
// Cache Store's temp-sibling-then-rename write.
func (e *MarkdownExporter) writeNote(dir, filename, content string) error {
	target := filepath.Join(dir, filename)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return apperrors.NewCacheCorrupt(target, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return apperrors.NewCacheCorrupt(target, err)
	}
	return nil
}

// sweep removes any ".md" file in dir not present in written, so a note
// for a member/bill/committee that dropped out of the graph (merged,
// renumbered, retired) does not linger.
func (e *MarkdownExporter) sweep(dir string, written map[string]bool) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, apperrors.NewCacheCorrupt(dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		if written[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, apperrors.NewCacheCorrupt(entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

func memberFilename(m *model.Member) string {
	return slug.Make(m.Name) + fileExt
}

func billFilename(b *model.Bill) string {
	return slug.Make(b.BillNumber) + fileExt
}

func committeeFilename(c *model.Committee) string {
	return slug.Make(c.Name) + fileExt
}

// frontmatter marshals fields as a YAML block wrapped in "---" fences,
// the format Obsidian reads as note properties.
func frontmatter(fields map[string]any) string {
	data, err := yaml.Marshal(fields)
	if err != nil {
		// Only reachable if fields contains something yaml.v3 cannot
		// encode, which none of this package's call sites do.
		return "---\n---\n\n"
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	return b.String()
}

func wikiLink(name string) string {
	return "[[" + name + "]]"
}

func renderMember(m *model.Member, sc *model.Scorecard, mb *model.MoneyballProfile) string {
	fields := map[string]any{
		"type":     "legislator",
		"chamber":  string(m.Chamber),
		"party":    m.Party,
		"district": m.District,
		"role":     m.Role,
	}
	tags := []string{"legislator", strings.ToLower(string(m.Chamber))}
	if sc != nil {
		fields["bills_introduced"] = sc.BillsIntroduced
		fields["laws_passed"] = sc.LawsPassed
		fields["law_success_rate"] = sc.LawSuccessRate
	}
	if mb != nil {
		fields["moneyball_score"] = mb.MoneyballScore
		if mb.IsLeadership() {
			tags = append(tags, "leadership")
		}
	}
	fields["tags"] = tags

	var b strings.Builder
	b.WriteString(frontmatter(fields))
	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	fmt.Fprintf(&b, "%s district %d, %s.\n\n", m.Chamber, m.District, m.Party)

	if len(m.PrimaryBills) > 0 {
		b.WriteString("## Primary Sponsor\n\n")
		for _, bill := range m.PrimaryBills {
			fmt.Fprintf(&b, "- %s\n", wikiLink(bill.BillNumber))
		}
		b.WriteString("\n")
	}
	if len(m.Bills) > len(m.PrimaryBills) {
		b.WriteString("## Co-sponsored\n\n")
		for _, bill := range m.Bills {
			if bill.PrimarySponsorID() == m.MemberID {
				continue
			}
			fmt.Fprintf(&b, "- %s\n", wikiLink(bill.BillNumber))
		}
		b.WriteString("\n")
	}
	if len(m.CommitteeCodes) > 0 {
		b.WriteString("## Committees\n\n")
		for _, code := range m.CommitteeCodes {
			fmt.Fprintf(&b, "- %s\n", wikiLink(code))
		}
		b.WriteString("\n")
	}
	if len(m.SeatmateNames) > 0 {
		b.WriteString("## Seatmates\n\n")
		for _, name := range m.SeatmateNames {
			fmt.Fprintf(&b, "- %s\n", wikiLink(name))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderBill(b *model.Bill) string {
	fields := map[string]any{
		"type":    "bill",
		"chamber": string(b.Chamber),
		"kind":    string(b.Kind),
		"status":  string(b.Status),
	}
	if b.LastActionDate != nil {
		fields["last_action_date"] = b.LastActionDate.Format(time.DateOnly)
	}
	fields["tags"] = []string{"bill", strings.ToLower(string(b.Kind))}

	var out strings.Builder
	out.WriteString(frontmatter(fields))
	fmt.Fprintf(&out, "# %s\n\n", b.BillNumber)
	if b.Description != "" {
		fmt.Fprintf(&out, "%s\n\n", b.Description)
	}
	if len(b.Sponsors) > 0 {
		out.WriteString("## Sponsors\n\n")
		for _, m := range b.Sponsors {
			fmt.Fprintf(&out, "- %s\n", wikiLink(m.Name))
		}
		out.WriteString("\n")
	}
	if len(b.HouseSponsors) > 0 {
		out.WriteString("## House Sponsors\n\n")
		for _, m := range b.HouseSponsors {
			fmt.Fprintf(&out, "- %s\n", wikiLink(m.Name))
		}
		out.WriteString("\n")
	}
	if b.LastAction != "" {
		fmt.Fprintf(&out, "## Last Action\n\n%s\n\n", b.LastAction)
	}
	return out.String()
}

func renderCommittee(c *model.Committee) string {
	fields := map[string]any{
		"type":    "committee",
		"chamber": string(c.Chamber),
		"code":    c.Code,
	}
	fields["tags"] = []string{"committee", strings.ToLower(string(c.Chamber))}

	var out strings.Builder
	out.WriteString(frontmatter(fields))
	fmt.Fprintf(&out, "# %s\n\n", c.Name)
	if c.Parent != nil {
		fmt.Fprintf(&out, "Subcommittee of %s.\n\n", wikiLink(c.Parent.Name))
	}
	if len(c.Members) > 0 {
		out.WriteString("## Roster\n\n")
		for _, membership := range c.Members {
			name := membership.MemberID
			if membership.Member != nil {
				name = membership.Member.Name
			}
			fmt.Fprintf(&out, "- %s (%s)\n", wikiLink(name), membership.Role)
		}
		out.WriteString("\n")
	}
	if len(c.Bills) > 0 {
		out.WriteString("## Bills Referred\n\n")
		for _, b := range c.Bills {
			fmt.Fprintf(&out, "- %s\n", wikiLink(b.BillNumber))
		}
		out.WriteString("\n")
	}
	return out.String()
}
