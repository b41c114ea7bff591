package main

import (
	"fmt"
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	"github.com/rossop/dxfwrite/dimstyle"
	"github.com/rossop/dxfwrite/drawing"
	"github.com/rossop/dxfwrite/processing"
)

const SOURCEJSON string = `sourceJson`
const SOURCEGPKG string = `sourceGpkg`
const TARGET string = `targetDxf`
const OVERWRITE string = `overwrite`
const POS string = `pos`
const ANGLE string = `angle`
const STYLE string = `style`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "dxfwrite"
	app.Usage = "Render simple dimension lines into a DXF drawing"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    SOURCEJSON,
			Aliases: []string{"s"},
			Usage:   "Source job document (JSON) with styles and dimensions",
			EnvVars: []string{strcase.ToScreamingSnake(SOURCEJSON)},
		},
		&cli.StringFlag{
			Name:    SOURCEGPKG,
			Aliases: []string{"g"},
			Usage:   "Source GeoPackage. Every point layer becomes one dimension line through its points",
			EnvVars: []string{strcase.ToScreamingSnake(SOURCEGPKG)},
		},
		&cli.StringFlag{
			Name:     TARGET,
			Aliases:  []string{"t"},
			Usage:    "Target DXF file",
			Required: true,
			EnvVars:  []string{strcase.ToScreamingSnake(TARGET)},
		},
		&cli.BoolFlag{
			Name:    OVERWRITE,
			Aliases: []string{"o"},
			Usage:   "Overwrite the target DXF if it exists",
			EnvVars: []string{strcase.ToScreamingSnake(OVERWRITE)},
		},
		&cli.StringFlag{
			Name:    POS,
			Usage:   `Dimension line position for GeoPackage sources. JSON array: [x,y]`,
			Value:   `[0,0]`,
			EnvVars: []string{strcase.ToScreamingSnake(POS)},
		},
		&cli.Float64Flag{
			Name:    ANGLE,
			Usage:   "Dimension line angle in degrees for GeoPackage sources",
			EnvVars: []string{strcase.ToScreamingSnake(ANGLE)},
		},
		&cli.StringFlag{
			Name:    STYLE,
			Usage:   "Dimension style name for GeoPackage sources",
			Value:   dimstyle.DefaultName,
			EnvVars: []string{strcase.ToScreamingSnake(STYLE)},
		},
	}

	app.Action = func(c *cli.Context) error {
		registry := dimstyle.NewRegistry()
		d := drawing.New()
		drawing.Setup(d, registry)

		var source processing.Source
		switch {
		case c.String(SOURCEJSON) != "":
			jsonSource, err := loadJobs(c.String(SOURCEJSON), registry)
			if err != nil {
				return fmt.Errorf("reading job document: %w", err)
			}
			source = jsonSource
		case c.String(SOURCEGPKG) != "":
			gpkgSource, err := newGpkgSource(c.String(SOURCEGPKG), registry, gpkgParams{
				pos:       c.String(POS),
				angle:     c.Float64(ANGLE),
				styleName: c.String(STYLE),
			})
			if err != nil {
				return fmt.Errorf("opening source GeoPackage: %w", err)
			}
			defer gpkgSource.Close()
			source = gpkgSource
		default:
			return fmt.Errorf("either %s or %s is required", SOURCEJSON, SOURCEGPKG)
		}

		log.Println("=== start dimensioning ===")
		processing.ProcessJobs(source, d)
		log.Println("=== done dimensioning ===")

		return saveDrawing(d, c.String(TARGET), c.Bool(OVERWRITE))
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func saveDrawing(d *drawing.Drawing, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("target %s exists, use --%s to replace it", path, OVERWRITE)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating target DXF: %w", err)
	}
	defer file.Close()
	if err := d.Save(file); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
