package gateway

import "sync"

// Room naming: one private room per user, one per group. Group-room
// membership is a per-connection cache built at authentication time; later
// group joins/leaves arrive as explicit join_group/leave_group events, it is
// not synchronized with durable group membership.
func userRoom(userID string) string {
	return "user:" + userID
}

func groupRoom(groupID string) string {
	return "group:" + groupID
}

type Rooms struct {
	mu    sync.RWMutex
	rooms map[string]map[*session]struct{}
}

func NewRooms() *Rooms {
	return &Rooms{
		rooms: make(map[string]map[*session]struct{}),
	}
}

func (r *Rooms) Join(room string, s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		members = make(map[*session]struct{})
		r.rooms[room] = members
	}
	members[s] = struct{}{}
}

func (r *Rooms) Leave(room string, s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.rooms[room]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
}

func (r *Rooms) LeaveAll(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for room, members := range r.rooms {
		delete(members, s)
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
}

// Publish fans an event out to every connection in the room, optionally
// excluding one (typically the originator). Absent rooms are a silent no-op:
// delivery to the disconnected is skipped, never queued.
func (r *Rooms) Publish(room string, except *session, event string, data interface{}) {
	r.mu.RLock()
	members := make([]*session, 0, len(r.rooms[room]))
	for s := range r.rooms[room] {
		if s != except {
			members = append(members, s)
		}
	}
	r.mu.RUnlock()

	for _, s := range members {
		s.push(event, data)
	}
}
