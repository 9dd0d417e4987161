// Package bridge is the dispatch boundary between the caller-visible
// document API and the natively-loaded SVG libraries.
//
// Three commands exist: CreateDocument, FreeDocument, and RenderDocument.
// Each carries a flat, strongly-typed parameter block, and every dispatch
// returns a Status code; rich errors stay on the caller's side of the
// boundary. No other call shape crosses it.
//
//	d := bridge.New(native.NewLoader())
//
//	cmd := &bridge.CreateDocument{Data: svgBytes}
//	if st := d.Dispatch(cmd); st != bridge.StatusOK {
//	    // StatusNotSupported: libraries missing
//	    // StatusUnsuccessful: parser rejected the input
//	}
//	defer d.Dispatch(&bridge.FreeDocument{Handle: cmd.Handle})
package bridge
