package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/livechord/constants"
	"github.com/jsphweid/livechord/model"
	"github.com/jsphweid/livechord/pitch"
	"github.com/jsphweid/livechord/session"
	"github.com/jsphweid/livechord/util"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultVelocity = 100

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $LIVECHORD_HTTP_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API with a virtual keyboard",
	Long: `Serves the chord API. Notes are pressed and released through
POST /notes/on and POST /notes/off instead of a MIDI device.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetHTTPAddr()
		}
		sess := session.New(nil)
		defer sess.Close()
		return serve(cmd.Context(), addr, NewRouter(sess))
	},
}

type server struct {
	sess *session.Session
}

func NewRouter(sess *session.Session) http.Handler {
	s := &server{sess: sess}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chord", s.handleChord).Methods("GET")
	router.HandleFunc("/signature", s.handleSignature).Methods("GET")
	router.HandleFunc("/notes", s.handleNotes).Methods("GET")
	router.HandleFunc("/notes", s.handleReleaseAll).Methods("DELETE")
	router.HandleFunc("/notes/on", s.handleNoteOn).Methods("POST")
	router.HandleFunc("/notes/off", s.handleNoteOff).Methods("POST")
	router.HandleFunc("/classify", s.handleClassify).Methods("POST")
	router.HandleFunc("/shapes", s.handleShapes).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCORSOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})
	return c.Handler(router)
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errs := make(chan error, 1)
	go func() {
		logrus.Infof("serving chord API on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func (s *server) writeState(w http.ResponseWriter) {
	st := s.sess.State()
	writeJSON(w, http.StatusOK, model.NewChordResponse(st.Notes, st.Chord))
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	s.writeState(w)
}

func (s *server) handleSignature(w http.ResponseWriter, r *http.Request) {
	sig := s.sess.CurrentSignature()
	writeJSON(w, http.StatusOK, model.SignatureResponse{Intervals: sig.Labels()})
}

func (s *server) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NotesResponse{Notes: noteNames(s.sess)})
}

func (s *server) handleReleaseAll(w http.ResponseWriter, r *http.Request) {
	s.sess.ReleaseAll()
	s.writeState(w)
}

func decodeNoteEvent(r *http.Request) (model.NoteEventRequestBody, error) {
	var input model.NoteEventRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, errors.Wrap(err, "could not decode request body")
	}
	if input.Key < 0 || input.Key > 127 {
		return input, errors.Errorf("key %d is not a MIDI key", input.Key)
	}
	if input.Velocity != nil && (*input.Velocity < 0 || *input.Velocity > 127) {
		return input, errors.Errorf("velocity %d is not a MIDI velocity", *input.Velocity)
	}
	return input, nil
}

func (s *server) handleNoteOn(w http.ResponseWriter, r *http.Request) {
	input, err := decodeNoteEvent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	velocity := defaultVelocity
	if input.Velocity != nil {
		velocity = *input.Velocity
	}
	s.sess.OnNoteOn(input.Key, velocity)
	s.writeState(w)
}

func (s *server) handleNoteOff(w http.ResponseWriter, r *http.Request) {
	input, err := decodeNoteEvent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.sess.OnNoteOff(input.Key)
	s.writeState(w)
}

func (s *server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var input model.ClassifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}
	notes, err := parseNotes(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res := s.sess.Analyzer().Classify(notes)
	writeJSON(w, http.StatusOK, model.NewChordResponse(notes, res))
}

func (s *server) handleShapes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.NewShapeResponses(s.sess.Analyzer().Shapes()))
}

func noteNames(sess *session.Session) []string {
	return util.Map(sess.Notes(), pitch.Pitch.String)
}
