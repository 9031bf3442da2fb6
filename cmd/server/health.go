package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// newHealthCmd 探测运行中服务的就绪状态，适合容器健康检查
func newHealthCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether a running server reports ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := probe(ctx, strings.TrimRight(url, "/")+"/health/ready"); err != nil {
				fmt.Fprintf(os.Stderr, "unhealthy: %v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "healthy")
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://127.0.0.1:8080", "服务地址")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "请求超时")
	return cmd
}

func probe(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d", target, resp.StatusCode)
	}
	return nil
}
