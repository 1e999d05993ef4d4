//go:build ignore

// icon_gen wraps the rendered Icon.png into Icon.ico for the Windows build.
//
// Usage: go run . && go run icon_gen.go
package main

import (
	"bytes"
	"image"
	_ "image/png"
	"os"

	"go.uber.org/zap"

	"tamaiicon/internal/icon"
)

func main() {
	sourceFile := icon.OutputFile
	destFile := "Icon.ico"

	logger, err := zap.NewDevelopment(zap.WithCaller(false))
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Infof("Converting %s -> %s...", sourceFile, destFile)

	f, err := os.Open(sourceFile)
	if err != nil {
		log.Errorf("Error opening PNG: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Errorf("Error decoding PNG: %v", err)
		os.Exit(1)
	}

	// ICO entries top out at 256px
	if b := img.Bounds(); b.Dx() > 256 || b.Dy() > 256 {
		log.Errorf("%s is %dx%d, ICO allows at most 256x256", sourceFile, b.Dx(), b.Dy())
		os.Exit(1)
	}

	buf := new(bytes.Buffer)
	if err := icon.EncodeICO(buf, img); err != nil {
		log.Errorf("Error encoding ICO: %v", err)
		os.Exit(1)
	}

	if err := icon.Save(destFile, buf.Bytes()); err != nil {
		log.Errorf("Error writing ICO: %v", err)
		os.Exit(1)
	}
	log.Info("Icon conversion successful.")
}
