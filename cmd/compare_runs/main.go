package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/wrapbench/internal/pdf"
	"github.com/kpauljoseph/wrapbench/internal/scanner"
	"github.com/kpauljoseph/wrapbench/pkg/logger"
	"github.com/kpauljoseph/wrapbench/pkg/utils"
)

func main() {
	dir := flag.String("dir", os.TempDir(), "directory searched for runs when no files are given")
	outDir := flag.String("out", "", "directory for side-by-side page images (default: a new temp dir)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: compare_runs [flags] [older.pdf newer.pdf]")
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(logger.WithPrefix("[compare_runs] "))
	log.SetVerbose(*verbose)

	var pdf1Path, pdf2Path string
	switch flag.NArg() {
	case 2:
		pdf1Path, pdf2Path = flag.Arg(0), flag.Arg(1)
	case 0:
		runs, err := scanner.New(log).Latest(context.Background(), *dir, 2)
		if err != nil {
			log.Fatal("Error finding runs: %v", err)
		}
		pdf1Path, pdf2Path = runs[1].Path, runs[0].Path
	default:
		flag.Usage()
		os.Exit(1)
	}

	if *outDir == "" {
		*outDir = utils.GetDefaultPreviewDir()
	}
	composer, err := pdf.NewComposer(*outDir, log)
	if err != nil {
		log.Fatal("Error creating output directory: %v", err)
	}

	doc1, err := fitz.New(pdf1Path)
	if err != nil {
		log.Fatal("Error opening first PDF: %v", err)
	}
	defer doc1.Close()

	doc2, err := fitz.New(pdf2Path)
	if err != nil {
		log.Fatal("Error opening second PDF: %v", err)
	}
	defer doc2.Close()

	fmt.Printf("\nComparing:\n  PDF 1: %s\n  PDF 2: %s\n", pdf1Path, pdf2Path)

	fileHash1, err1 := utils.HashFile(pdf1Path)
	fileHash2, err2 := utils.HashFile(pdf2Path)
	if err1 != nil || err2 != nil {
		log.Warn("Error hashing PDF files: %v", errors.Join(err1, err2))
	} else {
		fmt.Printf("Files byte-identical: %v\n", fileHash1 == fileHash2)
	}
	fmt.Printf("PDF 1 pages: %d\n", doc1.NumPage())
	fmt.Printf("PDF 2 pages: %d\n", doc2.NumPage())

	maxPages := min(doc1.NumPage(), doc2.NumPage())
	differing := 0

	for pageNum := 0; pageNum < maxPages; pageNum++ {
		fmt.Printf("\nPage %d:\n", pageNum+1)

		text1, err1 := doc1.Text(pageNum)
		text2, err2 := doc2.Text(pageNum)
		if err1 != nil || err2 != nil {
			log.Warn("Error extracting text from page %d: %v", pageNum+1, errors.Join(err1, err2))
			fmt.Printf("  Text identical: unknown\n")
		} else {
			fmt.Printf("  Text identical: %v\n", text1 == text2)
		}

		img1, err := doc1.Image(pageNum)
		if err != nil {
			log.Warn("Error extracting image from PDF 1: %v", err)
			continue
		}
		img2, err := doc2.Image(pageNum)
		if err != nil {
			log.Warn("Error extracting image from PDF 2: %v", err)
			continue
		}

		hash1, err1 := utils.GenerateImageHash(img1)
		hash2, err2 := utils.GenerateImageHash(img2)
		if err1 != nil || err2 != nil {
			log.Warn("Error hashing page %d: %v", pageNum+1, errors.Join(err1, err2))
			differing++
			continue
		}
		if hash1 == hash2 {
			fmt.Printf("  Rendering identical\n")
			continue
		}
		differing++

		outPath, err := composer.SideBySide(img1, img2, fmt.Sprintf("page_%d", pageNum+1))
		if err != nil {
			log.Warn("Error composing page %d: %v", pageNum+1, err)
			continue
		}
		fmt.Printf("  Rendering differs, side by side: %s\n", outPath)
	}

	fmt.Printf("\n%d of %d compared pages differ. Images in %s\n", differing, maxPages, filepath.Clean(*outDir))
}
