// Package viewer serves recorded experiment results over HTTP. It exposes
// the tables of a results database as JSON curves plus a small embedded
// page that draws them, so a finished run can be inspected from the
// browser.
package viewer

import (
	"embed"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/dhcnlab/dhcn/recording"
)

//go:embed web/index.html
var staticAssets embed.FS

// Viewer turns a results database into a small web server.
type Viewer struct {
	reader *recording.Reader

	portNumber  int
	openBrowser bool
}

// New creates a Viewer over an opened results reader.
func New(reader *recording.Reader) *Viewer {
	return &Viewer{reader: reader}
}

// WithPortNumber sets the port of the server. Ports below 1000 are
// rejected and replaced by a random free port.
func (v *Viewer) WithPortNumber(portNumber int) *Viewer {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the results viewer, "+
				"using a random port instead.\n", portNumber)
		portNumber = 0
	}

	v.portNumber = portNumber

	return v
}

// WithBrowser makes the viewer open the system browser on start.
func (v *Viewer) WithBrowser() *Viewer {
	v.openBrowser = true
	return v
}

func (v *Viewer) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/tables", v.listTables)
	r.HandleFunc("/api/curves/{table}", v.readCurves)
	r.HandleFunc("/api/resources", v.listResources)
	r.HandleFunc("/", v.index)

	return r
}

// StartServer starts serving the results. It returns after the listener
// is established; serving continues in the background.
func (v *Viewer) StartServer() error {
	listener, err := net.Listen("tcp",
		fmt.Sprintf("127.0.0.1:%d", v.portNumber))
	if err != nil {
		return fmt.Errorf("start results viewer: %w", err)
	}

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "Serving results on %s\n", url)

	if v.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %s\n", err)
		}
	}

	go func() {
		_ = http.Serve(listener, v.router())
	}()

	return nil
}

func (v *Viewer) index(w http.ResponseWriter, _ *http.Request) {
	page, err := staticAssets.ReadFile("web/index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write(page)
}

func (v *Viewer) listTables(w http.ResponseWriter, _ *http.Request) {
	tables, err := v.reader.Tables()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, tables)
}

func (v *Viewer) readCurves(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]

	rows, err := v.reader.ReadAll(table)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, rows)
}

type resourceReport struct {
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryBytes uint64  `json:"memory_bytes"`
}

func (v *Viewer) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report := resourceReport{}
	if cpu, err := proc.CPUPercent(); err == nil {
		report.CPUPercent = cpu
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		report.MemoryBytes = mem.RSS
	}

	writeJSON(w, report)
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(value); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
