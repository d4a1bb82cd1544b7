// This file is part of glesbench.
//
// glesbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glesbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glesbench.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the HTTP server.
const Address = "localhost:12650"

const url = "/debug/statsview"

// Server is a running statsview server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch a new goroutine running the statsview. The address of the viewer is
// written to output.
func Launch(output io.Writer) *Server {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	srv := &Server{
		mgr: statsview.New(),
	}
	go srv.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s\n", URL())

	return srv
}

// URL returns the URL of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, url)
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
