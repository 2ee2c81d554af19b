package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/pictorlib/pictor"
	"github.com/pictorlib/pictor/imio"
	"github.com/pictorlib/pictor/utils"
)

const HelpBanner = `
┌─┐┬┌─┐┌┬┐┌─┐┬─┐
├─┘││   │ │ │├┬┘
┴  ┴└─┘ ┴ └─┘┴└─

Image border composition tool.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// result holds the status of a single processed image file.
type result struct {
	path string
	err  error
}

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	border      = flag.Int("border", 16, "Border width in pixels")
	colour      = flag.String("colour", "#ffffff", "Border colour as a hex string")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *border < 0 {
		log.Fatal(utils.DecorateText("The border width should not be negative!", utils.ErrorMessage))
	}
	fill, ok := pictor.ParseHex(*colour)
	if !ok {
		log.Fatalf(utils.DecorateText("Invalid border colour: %q\n", utils.ErrorMessage), *colour)
	}

	// Supported files
	validExtensions := []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

	// Check if the source is a pipe name, a regular file or a directory.
	var (
		fs  os.FileInfo
		err error
	)
	if *source == pipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(*source)
	}
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		// Read destination file or directory.
		_, err := os.Stat(*destination)
		if err != nil {
			err = os.Mkdir(*destination, 0755)
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to get dir stats: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		if *workers <= 0 || *workers > maxWorkers {
			*workers = runtime.NumCPU()
		}

		// Process the image files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, *source, validExtensions)

		wg.Add(*workers)
		for i := 0; i < *workers; i++ {
			go func() {
				defer wg.Done()
				consumer(done, paths, *destination, *border, fill, ch)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		for res := range ch {
			printStatus(res.path, res.err)
		}

		if err := <-errc; err != nil {
			fmt.Fprintf(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := filepath.Ext(*destination)
		if !isValidExtension(ext, validExtensions) && *destination != pipeName {
			log.Fatal(utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
		}

		err := processor(*source, *destination, *border, fill)
		printStatus(*destination, err)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// walkDir starts a goroutine to walk the specified directory tree in recursive manner
// and send the path of each regular file on the string channel.
// It sends the result of the walk on the error channel.
// It terminates in case done channel is closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() {
				return nil
			}

			if isValidExtension(filepath.Ext(info.Name()), srcExts) {
				select {
				case <-done:
					return errors.New("directory walk cancelled")
				case pathChan <- path:
				}
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// consumer reads the path names from the paths channel, composes the
// border around each source image and sends the results on a new channel.
func consumer(
	done <-chan interface{},
	paths <-chan string,
	dest string,
	border int,
	fill pictor.Colour,
	res chan<- result,
) {
	for src := range paths {
		dest := filepath.Join(dest, filepath.Base(src))
		err := processor(src, dest, border, fill)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// processor decodes the source image, surrounds it with the border and
// encodes the composed image to the destination.
func processor(in, out string, border int, fill pictor.Colour) error {
	src, dst, err := pathToFile(in, out)
	if err != nil {
		return err
	}
	if f, ok := src.(*os.File); ok && f != os.Stdin {
		defer f.Close()
	}
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		defer f.Close()
	}

	img, err := imio.Decode(src)
	if err != nil {
		return err
	}

	res, err := addBorder(img, border, fill)
	if err != nil {
		return err
	}

	format := filepath.Ext(out)
	if out == pipeName || format == "" {
		format = ".png"
	}
	return imio.Encode(dst, res, format)
}

// addBorder expands the image canvas on all sides and overlays the
// original image centered on it, leaving a uniform frame of fill colour.
func addBorder(img pictor.Image, border int, fill pictor.Colour) (pictor.Image, error) {
	dim, err := img.Dimensions().Expand(border)
	if err != nil {
		return pictor.Image{}, err
	}

	canvas, err := pictor.BlankWithColour(dim, fill)
	if err != nil {
		return pictor.Image{}, err
	}
	return canvas.Overlay(img, pictor.Loc{X: border, Y: border}), nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)

	// Check if the source is a pipe name or a regular file.
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %v", err)
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}
	return src, dst, nil
}

// isValidExtension checks if the file extension is supported.
func isValidExtension(ext string, exts []string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}

// printStatus displays the relevant information about the composed image.
func printStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError composing the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
