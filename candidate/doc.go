// Package candidate seeds the network extraction with initial snakes.
//
// The gradient field is scanned along every image axis for sign changes of
// the gradient component (ridges). A voxel that is a ridge across the other
// axes is a candidate for direction d, and runs of direction-d candidates
// are linked into open polylines that become initial snakes.
//
// Scan order is fixed: the direction axis is the outermost loop, the lateral
// axes follow in increasing order, and lateral neighbors one step ahead are
// tried in increasing offset order. Identical input therefore always yields
// the same candidates in the same order.
package candidate
