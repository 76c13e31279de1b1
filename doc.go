// Package forwardlist provides a singly linked list that is safe for
// concurrent use without a list-wide lock.
//
// Insertion and removal at the front are lock-free CAS loops on the head
// link. Insertion and removal after an arbitrary position lock only the
// nodes involved. A permanent before-begin node owns the head link, so the
// two paths agree on who may rewrite a given successor link.
//
// Positions are Iterator values. An iterator keeps its node reachable for
// the garbage collector even after the node leaves the list; Valid reports
// whether the node has been removed. Removal happens exactly once per node,
// through PopFront, EraseAfter or Clear.
//
// Clear detaches the whole chain and marks every detached node deleted.
// Iterators already walking the chain may keep advancing to its end; each
// node they visit reports Valid() == false.
package forwardlist
