/*
Package sale implements the timed sale of the token collection.

The sale progresses through stages driven by the block time. A presale
exclusive to OG allowlist members opens first, after a fixed interval all WL
allowlist members can join as well and once the public sale starts anyone
can mint. Allowlist membership is proven with a merkle proof against a root
that is part of the sale configuration.

Every mint is paid for upfront. Payments are moved into the revenue account
and leave it only through the treasury extension.
*/
package sale
