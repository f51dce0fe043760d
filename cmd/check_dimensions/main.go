package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpauljoseph/wrapbench/internal/pdf"
)

func main() {
	pdfPath := flag.String("file", "", "Path to PDF file")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Please provide a PDF file path using -file flag")
		os.Exit(1)
	}

	fmt.Printf("Analyzing PDF: %s\n", *pdfPath)

	report, err := pdf.Inspect(*pdfPath)
	if err != nil {
		fmt.Printf("Error inspecting PDF: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pages: %d\n", report.PageCount)
	for i, dim := range report.Pages {
		fmt.Printf("\nPage %d:\n", i+1)
		fmt.Printf("Dimensions (Width x Height): %.3f x %.3f points\n", dim.Width, dim.Height)
	}
}
