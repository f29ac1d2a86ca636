// Package hrdiagram counts the stars of the XHIP catalogue (VizieR V/137D)
// per luminosity class and spectral type and draws their
// Hertzsprung-Russell diagram.
//
// Usage:
//
//	client := catalog.NewClient(catalog.Config{})
//	stars, err := client.Fetch(ctx, catalog.XHIPQuery(true))
//
//	result, err := engine.Analyze(engine.NewStarView(stars),
//	    engine.WithSpectralTypes(true),
//	)
//
//	err = render.WithFigure(render.DefaultFigureConfig(), func(fig *render.Figure) error {
//	    if err := fig.DrawHRDiagram(result.Diagram); err != nil {
//	        return err
//	    }
//	    return fig.Save("hr-diagram.png")
//	})
//
// The engine never calls an external service; only the catalog package
// talks to the network.
package hrdiagram
