package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage uploaded documents",
	Long:  `Upload documents, print their extracted text, or get a link to them.`,
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload [path]",
	Short: "Upload a document",
	Long: `Stores a local file and prints the document id used by the other commands.
The id keeps the file extension, which selects the text extractor.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentUpload,
}

var documentExtractCmd = &cobra.Command{
	Use:   "extract [doc-id]",
	Short: "Print extracted document text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentExtract,
}

var documentURLCmd = &cobra.Command{
	Use:   "url [doc-id]",
	Short: "Print a time-limited link to a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentURL,
}

// extractStats is a flag for the extract command.
var extractStats bool

func init() {
	documentExtractCmd.Flags().BoolVar(&extractStats, "stats", false, "print character and line counts instead of the text")

	documentCmd.AddCommand(documentUploadCmd)
	documentCmd.AddCommand(documentExtractCmd)
	documentCmd.AddCommand(documentURLCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	name := filepath.Base(path)
	upload, err := uploadService.Upload(cmd.Context(), name, f, info.Size(), mime.TypeByExtension(filepath.Ext(name)))
	if err != nil {
		return userError(err)
	}

	cmd.Printf("Uploaded: %s\n", upload.Key)
	cmd.Printf("URL: %s\n", upload.URL)
	return nil
}

func runDocumentExtract(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	text, err := documentService.GetText(cmd.Context(), args[0])
	if err != nil {
		return userError(err)
	}

	if extractStats {
		cmd.Printf("Characters: %d\n", utf8.RuneCountInString(text))
		cmd.Printf("Lines: %d\n", countLines(text))
		return nil
	}

	cmd.Print(text)
	if text != "" && text[len(text)-1] != '\n' {
		cmd.Println()
	}
	return nil
}

func runDocumentURL(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	url, err := uploadService.SignedURL(cmd.Context(), args[0])
	if err != nil {
		return userError(err)
	}

	cmd.Println(url)
	return nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
}
