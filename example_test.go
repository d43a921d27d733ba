package pdfwriter_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/andybalholm/pdfwriter"
	"github.com/andybalholm/pdfwriter/imagesource"
)

func Example() {
	d, err := pdfwriter.New()
	if err != nil {
		log.Fatal(err)
	}
	catalog := d.Alloc()
	pages := d.Alloc()
	page := d.Alloc()
	font := d.Alloc()
	contents := d.Alloc()

	if err := d.Catalog(catalog).Pages(pages).Finish(); err != nil {
		log.Fatal(err)
	}
	if err := d.PageTree(pages).Kids(page).Finish(); err != nil {
		log.Fatal(err)
	}

	p := d.Page(page).MediaBox(pdfwriter.A4).Parent(pages).Contents(contents)
	if err := p.Resources().Font("F1", font).Finish(); err != nil {
		log.Fatal(err)
	}
	if err := p.Finish(); err != nil {
		log.Fatal(err)
	}
	if err := d.Type1Font(font).BaseFont("Helvetica").Finish(); err != nil {
		log.Fatal(err)
	}

	c := pdfwriter.NewContent().
		BeginText().
		SetFont("F1", 14).
		MoveText(108, 734).
		Show("Hello World from Go!").
		EndText()
	if err := d.ContentStream(contents, c); err != nil {
		log.Fatal(err)
	}

	out, err := d.Finish()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out[:8])
	fmt.Println(bytes.HasSuffix(out, []byte("%%EOF\n")))
	// Output:
	// %PDF-1.7
	// true
}

func ExampleDocument_EmbedImage() {
	d, err := pdfwriter.New(pdfwriter.WithVersion("1.4"))
	if err != nil {
		log.Fatal(err)
	}
	catalog := d.Alloc()
	pages := d.Alloc()
	page := d.Alloc()
	contents := d.Alloc()

	px, err := imagesource.QRCode("https://example.com/", 200)
	if err != nil {
		log.Fatal(err)
	}
	img, err := d.EmbedImage(px)
	if err != nil {
		log.Fatal(err)
	}

	if err := d.Catalog(catalog).Pages(pages).Finish(); err != nil {
		log.Fatal(err)
	}
	if err := d.PageTree(pages).Kids(page).Finish(); err != nil {
		log.Fatal(err)
	}
	p := d.Page(page).MediaBox(pdfwriter.A4).Parent(pages).Contents(contents)
	if err := p.Resources().XObject("Im1", img.Ref).Finish(); err != nil {
		log.Fatal(err)
	}
	if err := p.Finish(); err != nil {
		log.Fatal(err)
	}

	w, h := pdfwriter.Fit(img.Width, img.Height, 200)
	placement := pdfwriter.Center(pdfwriter.A4, w, h)
	c := pdfwriter.NewContent().DrawImage("Im1", placement)
	if err := d.ContentStream(contents, c); err != nil {
		log.Fatal(err)
	}

	if _, err := d.Finish(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(img.Filter, img.Mask == 0)
	fmt.Println(placement)
	// Output:
	// FlateDecode true
	// {197.5 321 200 200}
}
