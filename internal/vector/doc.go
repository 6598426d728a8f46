// Package vector implements the affine kernel for symbolic mechanics:
// reference frames, vectors, points, and dyadics whose components are
// exact expressions from the symbol package.
//
//   - [Frame]: a named orthonormal basis; frames form an orientation tree
//     via [Frame.Orient] and carry explicit angular velocities.
//   - [Vector]: a frame-tagged component triple (or a sum of them across
//     frames); re-expressed between frames with direction cosine matrices.
//   - [Point]: a location in affine space; positions are relative to other
//     points, velocities are per-frame.
//   - [Dyadic]: a rank-2 tensor in a frame, used for rotational inertia.
//
// Frames and points are shared by reference across the model graph; the
// package never copies them and provides no locking.
package vector
