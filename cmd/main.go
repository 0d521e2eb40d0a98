package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/shouni/go-e4b/pkg/e4b"
	"github.com/shouni/go-e4b/pkg/e4b/audio"
	"github.com/shouni/go-e4b/pkg/e4b/manifest"
)

const usageText = `使い方:
  e4b inspect [-remote] [-skip-invalid] <bank.e4b|URL>...
  e4b toc <bank.e4b>
  e4b export <bank.e4b> <出力ディレクトリ>
  e4b build <manifest.json> <出力.e4b>

環境変数:
  E4B_LOG_LEVEL     debug / info / warn / error (既定: info)
  E4B_MAX_PARALLEL  inspect の同時読み込み数
  E4B_HTTP_TIMEOUT  リモート取得のタイムアウト (例: 30s)
  E4B_BASE_URL      相対参照を解決するベースURL
`

// logLevel は環境変数からログレベルを決めます。
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv(e4b.EnvLogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// ログ設定 (標準出力は inspect の結果に使うため標準エラーに出す)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	// Ctrl-C で読み込み中の処理をキャンセルする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command, args := os.Args[1], os.Args[2:]
	var err error
	switch command {
	case "inspect":
		err = runInspect(ctx, args)
	case "toc":
		err = runTOC(args)
	case "export":
		err = runExport(args)
	case "build":
		err = runBuild(ctx, args)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(os.Stdout, usageText)
		return
	default:
		fmt.Fprintf(os.Stderr, "不明なコマンドです: %s\n\n%s", command, usageText)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("コマンドの実行に失敗しました。", "command", command, "error", err)
		os.Exit(1)
	}
}

// ----------------------------------------------------------------------
// サブコマンド
// ----------------------------------------------------------------------

func runInspect(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	remote := fs.Bool("remote", false, "http(s) のソースを許可します")
	skipInvalid := fs.Bool("skip-invalid", false, "不正なバンクを警告だけで読み飛ばします")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("バンクを1つ以上指定してください")
	}

	var opts []e4b.LoadOption
	if *skipInvalid {
		opts = append(opts, e4b.WithSkipInvalid())
	}

	sources := fs.Args()
	banks, err := e4b.NewBankLoader(*remote).Load(ctx, sources, opts...)
	for i, b := range banks {
		if b == nil {
			continue
		}
		printBank(os.Stdout, sources[i], b)
	}
	return err
}

// runTOC はデータチャンクを解釈せずに TOC の内容だけを表示します。
func runTOC(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("toc には入力バンクを1つ指定してください")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := e4b.ReadTOC(f)
	if err != nil {
		return err
	}
	printTOC(os.Stdout, entries)
	return nil
}

func runExport(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("export には入力バンクと出力ディレクトリが必要です")
	}
	b, err := e4b.ReadFile(args[0])
	if err != nil {
		return err
	}

	paths, err := audio.ExportBank(args[1], b)
	slog.Info("サンプルを書き出しました。", "count", len(paths), "dir", args[1])
	return err
}

func runBuild(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("build にはマニフェストと出力パスが必要です")
	}
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	b, err := manifest.Build(ctx, m, filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	var opts []e4b.WriteOption
	if len(b.Sequences()) > 0 {
		opts = append(opts, e4b.WithSequences())
	}
	if err := e4b.WriteFile(args[1], b, opts...); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(args[1])
	slog.Info(fmt.Sprintf("✅ バンクを書き出しました。ファイル: %s", absPath))
	return nil
}
