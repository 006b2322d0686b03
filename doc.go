// Package cliquego fuses noisy 2D positional observations into cliques of
// mutually compatible measurements.
//
// Each observation carries a position and a 2x2 covariance describing its
// uncertainty. Two observations are compatible when the squared Mahalanobis
// distance between their positions, under the sum of their covariances, is
// within a chi-squared threshold. The CliqueIndex maintains a spatial index
// and the resulting compatibility graph, and enumerates the maximal cliques:
// groups of observations statistically consistent with a single true
// location.
//
// # Quick Start
//
//	cov := cliquego.IdentityCovariance()
//	a, _ := cliquego.NewObservation(uuid.New(), 0.0, 0.0, cov)
//	b, _ := cliquego.NewObservation(uuid.New(), 1.5, 0.0, cov)
//
//	ci, _ := cliquego.New(cliquego.ChiSquared2DOF95)
//	_ = ci.Insert(a)
//	_ = ci.Insert(b)
//
//	for _, clique := range ci.Cliques() {
//	    fmt.Println(clique) // ids consistent with one underlying object
//	}
//
// Batch construction is faster for large inputs and yields the same cliques
// as per-item insertion:
//
//	ci, _ := cliquego.FromObservations(cliquego.ChiSquared2DOF95, observations)
//
// # Contexts
//
// Observations known a priori to be distinct, such as simultaneous
// detections within a single sensor frame, can share a context tag:
//
//	frame := uuid.New()
//	obs, _ := cliquego.NewObservation(id, x, y, cov, cliquego.WithContext(frame))
//
// Two observations with the same context never fuse, regardless of overlap.
//
// # Key Properties
//
//   - Results are independent of insertion order
//   - Batch and incremental construction produce identical cliques
//   - Maximal cliques of size >= 2 only; no singletons, no subsets
//   - Spatial prefiltering via R-tree radius queries; the exact test decides
//   - Conservative numerics: singular covariance sums never fuse
package cliquego
