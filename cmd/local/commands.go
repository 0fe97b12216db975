package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scraper-dashboard/internal/dashboard"
	"scraper-dashboard/internal/generators"
	"scraper-dashboard/internal/pkg/logger"
	"scraper-dashboard/internal/query"
	"scraper-dashboard/internal/sources"
)

const defaultPageSize = 12

type options struct {
	snapshot string
	settings string
	category string
	verbose  bool
	params   query.Params
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "local",
		Short:        "Query and render a scraped-content snapshot",
		Long:         "local reads a snapshot JSON file and either prints a filtered listing or renders it to a static HTML page.",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.snapshot, "snapshot", "snapshot.json", "path to the snapshot JSON file")
	flags.StringVar(&opts.settings, "settings", "", "path to the settings JSON file (default: settings.json next to the snapshot)")
	flags.StringVar(&opts.category, "category", "", "restrict to one category")
	flags.StringSliceVar(&opts.params.Types, "type", nil, "content types to include (article,image,product,news,social,review)")
	flags.StringVarP(&opts.params.Search, "query", "q", "", "search text")
	flags.StringVar(&opts.params.From, "from", "", "lower date bound (RFC3339 or YYYY-MM-DD)")
	flags.StringVar(&opts.params.To, "to", "", "upper date bound (RFC3339 or YYYY-MM-DD)")
	flags.StringVar(&opts.params.Sort, "sort", "", "sort order: latest, oldest, a-z, z-a")
	flags.IntVar(&opts.params.Page, "page", 1, "page number")
	flags.IntVar(&opts.params.PageSize, "limit", defaultPageSize, "page size")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newQueryCmd(opts), newRenderCmd(opts))
	return root
}

func newQueryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Print one page of the listing as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, _, err := opts.list(cmd)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var out string
	var title string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one page of the listing to a static HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			listing, log, err := opts.list(cmd)
			if err != nil {
				return err
			}

			view := generators.NewPageView(title, listing.PageResult, listing.Pagination, time.Now())
			html, err := generators.NewHTMLGenerator().RenderString(view)
			if err != nil {
				return err
			}
			if err := writeFile(out, html); err != nil {
				return err
			}

			log.Info("📁 HTML 파일 생성 완료", zap.String("path", out), zap.Int("total", listing.TotalMatches))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d/%d)\n", out, len(listing.Items), listing.TotalMatches)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "index.html", "output HTML path")
	cmd.Flags().StringVar(&title, "title", "수집 데이터 대시보드", "page title")
	return cmd
}

// list는 스냅샷 파일에 조건을 적용한 한 페이지를 반환합니다.
func (o *options) list(cmd *cobra.Command) (dashboard.Listing, *logger.Logger, error) {
	cfg := logger.DefaultConfig()
	cfg.Output = "console"
	cfg.Level = "warn"
	if o.verbose {
		cfg.Level = "debug"
	}
	log, err := logger.New(cfg)
	if err != nil {
		return dashboard.Listing{}, nil, err
	}

	q, err := o.params.Build(defaultPageSize)
	if err != nil {
		return dashboard.Listing{}, nil, err
	}

	svc := dashboard.NewService(sources.NewFile(o.snapshot, o.settings), log)
	listing, err := svc.ListContent(cmd.Context(), o.category, q)
	if err != nil {
		return dashboard.Listing{}, nil, err
	}
	return listing, log, nil
}

// writeFile은 html을 path에 저장합니다.
func writeFile(path, html string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("파일 생성 실패: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(html); err != nil {
		return fmt.Errorf("파일 쓰기 실패: %w", err)
	}
	return nil
}
