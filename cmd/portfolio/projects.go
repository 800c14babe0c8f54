package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"portfolio.dev/internal/services"
)

var relatedLimit int

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the baked-in projects",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

var projectsRelatedCmd = &cobra.Command{
	Use:   "related <slug>",
	Short: "Show the related projects of a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsRelated,
}

func init() {
	projectsRelatedCmd.Flags().IntVar(&relatedLimit, "limit", services.DefaultRelatedLimit, "Maximum number of related projects")
}

func runProjects(cmd *cobra.Command, args []string) error {
	svc := services.NewProjectService(cfg.Projects)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSLUG\tTITLE\tCATEGORY")
	for _, p := range svc.GetAll() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Slug, p.Title, p.Category)
	}
	return w.Flush()
}

func runProjectsRelated(cmd *cobra.Command, args []string) error {
	svc := services.NewProjectService(cfg.Projects)
	slug := args[0]

	if _, err := svc.GetBySlug(slug); err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCATEGORY")
	for _, r := range svc.GetRelated(slug, relatedLimit) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Slug, r.Title, r.Category)
	}
	return w.Flush()
}
