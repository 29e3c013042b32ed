/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  args.go - Processament de la línia de comandaments.
 *
 */

package utils;

import (
  "errors"
  "fmt"
  "os"
  "strconv"
  "strings"
)


/*********/
/* TIPUS */
/*********/

type Args struct {

  // Diccionari amb els fitxers
  Files map[string]string

  // Operador i arguments
  Op     int
  OpArgs []string

  // Mode verbose: en escanejar un medi es comprova el checksum i
  // s'imprimeix l'informe complet de cada imatge.
  Verbose bool

  // Estat ocult
  no_names int // Compta quants fitxers hi han sense nom

}


/*************/
/* CONSTANTS */
/*************/

const OP_NONE    = 0
const OP_SHOW    = 1
const OP_LIST    = 2
const OP_SCAN    = 3
const OP_EXTRACT = 4


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func print_usage() {
  P := fmt.Println
  P("USAGE:\n")
  P("  sunxifw [-v] <IMGs> [<OP>]\n")
  P("    <IMGs>: <IMG> [<IMG>]*")
  P("    <IMG>:  <image file name> | <NAME>=<image file name>")
  P("    <NAME>: [A-Z]+")
  P("    <PART>: <PART_NONAME> | <NAME>=<PART_NONAME>")
  P("    <PART_NONAME>: /<part name>")
  P("")
  P("    <OP>: <OP_SHOW> | <OP_LIST> | <OP_SCAN> | <OP_EXTRACT>")
  P("")
  P("    <OP_EXTRACT> : (extract | x) <PART> [<PART>]*")
  P("")
  P("    <OP_LIST> : (list | ls)")
  P("")
  P("    <OP_SCAN> : scan")
  P("")
  P("    <OP_SHOW>: show | sh")
  P("")
  P("OPERATIONS:\n")
  P("  extract: Write the raw bytes of the given parts (boot images,")
  P("           partitions...) to the standard output.")
  P("")
  P("  list: Show the parts of the current files, one per line.")
  P("")
  P("  scan: Walk the current files sector by sector looking for eGON")
  P("        boot images. With -v every image found is checked and")
  P("        dumped; without it the images are just located.")
  P("")
  P("  show: This is the default operation. Show the information")
  P("        of the current files.")
  P("")
  P("OPTIONS:\n")
  P("  -v, --verbose: Verify checksums and dump the dram parameters")
  P("                 while scanning.")
  P("")
}


func check_name(name string) bool {
  for i := 0; i < len(name); i++ {
    if name[i] < 'A' || name[i] > 'Z' {
      return false
    }
  }
  return true
}


func (self *Args) register_filename(file_name string) error {

  var name string

  // Obté el nom
  ind := strings.Index ( file_name, "=" )
  if ind == -1 {
    name= strconv.FormatInt ( int64(self.no_names+1), 10 )
    self.no_names++
  } else if ind == 0 || ind == len(file_name)-1 {
    return errors.New("wrong file name syntax: "+file_name)
  } else {
    aux := strings.SplitN ( file_name, "=", 2 )
    if len(aux) != 2 || !check_name ( aux[0] ) {
      return errors.New("wrong file name syntax: "+file_name)
    }
    name,file_name= aux[0],aux[1]
  }

  // Intenta registrar
  if _,ok := self.Files[name]; ok {
    return errors.New("repeated file name: "+name)
  }
  self.Files[name]= file_name

  return nil

} // register_filename


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func NewArgs() (*Args,error) {
  return newArgs ( os.Args )
} // end NewArgs


func newArgs(argv []string) (*Args,error) {

  // Crea arguments
  args := Args {
    Op     : OP_NONE,
    Files  : make(map[string]string),
    OpArgs : argv[:0],
  }

  // Processa arguments
  for i := 1; i < len(argv); i++ {
    if argv[i]=="-v" || argv[i]=="--verbose" { // Mode verbose
      args.Verbose= true
    } else if argv[i]=="show" || argv[i]=="sh" { // Operació show
      args.Op= OP_SHOW
      args.OpArgs= argv[i+1:]
      break
    } else if argv[i]=="list" || argv[i]=="ls" { // Operació list
      args.Op= OP_LIST
      args.OpArgs= argv[i+1:]
      break
    } else if argv[i]=="scan" { // Operació scan
      args.Op= OP_SCAN
      args.OpArgs= argv[i+1:]
      break
    } else if argv[i]=="extract" || argv[i]=="x" { // Operació extract
      args.Op= OP_EXTRACT
      args.OpArgs= argv[i+1:]
      break
    } else if argv[i]=="version" || argv[i]=="--version" {
      PrintVersion ()
      os.Exit ( 0 )
    } else { // Filename
      if err := args.register_filename ( argv[i] ); err != nil {
        return nil,err
      }
    }
  }

  // Si no té fitxers mostra usage
  if len(args.Files) == 0 {
    print_usage ()
  }

  return &args,nil

} // end newArgs


// Aquesta funció processa un 'string' representant el nom d'una part
// i torna un objecte PartRef.
func (self *Args) GetPartRef(ref string) (*PartRef,error) {

  // Trim string
  ref= strings.TrimSpace ( ref )
  if len(ref) == 0 {
    return nil,errors.New ( "Empty part name" )
  }
  oref := ref

  // Obté el nom del fitxer
  var name string
  ind := strings.Index ( ref, "=" )
  if ind == -1 {
    name= strconv.FormatInt ( 1, 10 )
  } else if ind == 0 || ind == len(ref)-1 {
    return nil,errors.New("wrong syntax for part: "+ref)
  } else {
    aux := strings.SplitN ( ref, "=", 2 )
    if len(aux) != 2 || !check_name ( aux[0] ) {
      return nil,errors.New("wrong syntax for part: "+ref)
    }
    name,ref= aux[0],strings.TrimSpace ( aux[1] )
  }

  // Obté el nom del fitxer real
  file_name,ok := self.Files[name]
  if !ok {
    return nil,fmt.Errorf ( "Unknown file name: %s", name )
  }

  // Obté el nom de la part. El / inicial és opcional.
  if len(ref)>0 && ref[0]=='/' { ref= ref[1:] }
  if len(ref) == 0 || strings.Contains ( ref, "/" ) {
    return nil,errors.New("wrong syntax for part: "+oref)
  }

  ret := PartRef{
    FileName: file_name,
    Ref: oref,
    Part: ref,
  }

  return &ret,nil

} // end GetPartRef


/************/
/* PART REF */
/************/

type PartRef struct {
  FileName string // Nom del fitxer on estem buscant
  Ref      string // Referència tal com l'ha escrita l'usuari
  Part     string // Nom de la part dins del fitxer
}
