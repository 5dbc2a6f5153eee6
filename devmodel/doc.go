// Package devmodel defines the data model shared by the placement-common
// core: bels, locations, cells, nets, strengths, and the DeviceContext
// interface the core consumes from the device database and netlist
// collaborators.
//
// The model supports:
//
//   - A discrete 3-D device grid addressed by Loc{X,Y,Z}, bounded by
//     GridDimX/GridDimY and a per-(x,y) TileDimZ.
//   - An ordered Strength lattice (NONE < WEAK < STRONG < LOCKED) that
//     governs who may displace whom during placement and ripup.
//   - A Cell forest linked by constr_parent/constr_children, each cell
//     carrying independent X/Y/Z relative-or-absolute constraint fields.
//   - A Net with one driver endpoint and an ordered list of user endpoints,
//     each with a timing budget consumed by the wirelength estimator.
//
// devmodel owns no placement algorithms. It declares the vocabulary that
// wirelen, place, and legalise all build on, plus the two fatal error types
// (UnplaceableCellError, UnsatisfiableChainError) those packages raise.
//
// Why a separate devmodel package?
//
//   - Single source of truth for the DeviceContext contract — wirelen,
//     place, and legalise all depend on devmodel, never on each other's
//     internals.
//   - Deterministic iteration — CellNets returns name-sorted results so
//     every caller gets the same order for the same input.
//   - No hidden state — DeviceContext implementations (the real device
//     database, or devtest fixtures) own all mutable placement state; this
//     package only describes the shape of that state.
package devmodel
