/*
Package treasury controls how mint revenue leaves the application.

All mint payments are collected in a single revenue account. Anyone in the
treasury group can propose a withdrawal from that account but the funds move
only after enough approvers confirmed the withdrawal and the owner executes
it. Execution is additionally gated on the state of the sale, so that no
funds can be taken out before the collection went public.
*/
package treasury
