/*
Package resolve derives the categorical state of every station and segment
for a query year from their lifecycle event histories.

# Resolution order

For each entity, the first matching rule wins:

 1. no qualifying open year (no open event at-or-before the year and no
    usable creation fallback, or the fallback lies in the future) — planned
 2. latest close year before the query year — excluded from the result set
 3. close year equal to the query year — closed
 4. station's own current_status asserts closed — closed (stations only)
 5. electrification year equal to the query year — electrified
 6. open event year equal to the query year — new
 7. otherwise — existing

Closure information dominates everything else; the manual status override
sits just below hard closure dates since it may represent data the event log
has not caught up to. Open, close and electrification years each use the
latest event at-or-before the query year, so a reopened entity reads from
its most recent opening.

Resolution is a pure function of the immutable index and the year argument.
QueryForYear may be called repeatedly, for any years, in any order, from any
goroutine.
*/
package resolve
