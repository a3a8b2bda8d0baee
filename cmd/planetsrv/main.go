// Command planetsrv serves rendered planet maps over HTTP for previewing.
//
//	GET /map/{width}?seed=0&format=terrain
//
// returns the equirectangular projection as PNG, and
//
//	GET /face/{face}/{width}?seed=0&format=terrain
//
// returns a single cube face (xp, xn, yp, yn, zp or zn).
package main

import (
	"bytes"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/mjn33/complexplanet"
)

var (
	addr       string = ":3333"
	configPath string = ""
	maxWidth   int    = 4096
)

func init() {
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.StringVar(&configPath, "config", configPath, "optional YAML config file with terrain parameter overrides")
	flag.IntVar(&maxWidth, "max_width", maxWidth, "largest width served")
}

var cfg complexplanet.Config

// Planets are cached per seed; the graphs are immutable and shared between
// requests.
var (
	planetsMu sync.Mutex
	planets   = map[int64]*complexplanet.Planet{}
)

func planetForSeed(seed int64) (*complexplanet.Planet, error) {
	planetsMu.Lock()
	defer planetsMu.Unlock()
	if p, ok := planets[seed]; ok {
		return p, nil
	}
	p, err := complexplanet.NewPlanet(seed, &cfg)
	if err != nil {
		return nil, err
	}
	planets[seed] = p
	return p, nil
}

func main() {
	flag.Parse()

	cfg = complexplanet.DefaultConfig()
	if configPath != "" {
		c, err := complexplanet.LoadConfig(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	router := mux.NewRouter()
	router.HandleFunc("/map/{width}", mapHandler)
	router.HandleFunc("/face/{face}/{width}", faceHandler)
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

// parseRenderParams pulls the width path variable and the seed and format
// query parameters out of a request.
func parseRenderParams(req *http.Request) (width int, seed int64, format complexplanet.Format, err error) {
	vars := mux.Vars(req)
	width, err = strconv.Atoi(vars["width"])
	if err != nil {
		return
	}
	s := req.URL.Query().Get("seed")
	if s == "" {
		s = "0"
	}
	seed, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		return
	}
	f := req.URL.Query().Get("format")
	if f == "" {
		f = "terrain"
	}
	format, err = complexplanet.ParseFormat(f)
	return
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	width, seed, format, err := parseRenderParams(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	if width > maxWidth {
		http.Error(res, "width too large", http.StatusBadRequest)
		return
	}
	planet, err := planetForSeed(seed)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	field, err := complexplanet.RenderRect(planet, width)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := format.Image(field)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeImage(res, img)
}

func faceHandler(res http.ResponseWriter, req *http.Request) {
	width, seed, format, err := parseRenderParams(req)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	if width > maxWidth {
		http.Error(res, "width too large", http.StatusBadRequest)
		return
	}
	var face complexplanet.Face
	found := false
	for _, f := range complexplanet.Faces {
		if f.String() == mux.Vars(req)["face"] {
			face, found = f, true
			break
		}
	}
	if !found {
		http.Error(res, "unknown face", http.StatusBadRequest)
		return
	}
	planet, err := planetForSeed(seed)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	field, err := complexplanet.RenderFace(planet, face, width)
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := format.Image(field)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	writeImage(res, img)
}

// writeImage writes the image to the response writer.
func writeImage(w http.ResponseWriter, img image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		log.Println("unable to encode image.")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		log.Println("unable to write image.")
	}
}
